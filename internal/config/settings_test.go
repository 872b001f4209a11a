package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetServerURL()
	if url != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, url)
	}

	// Test setting custom value
	settings.SetServerURL("https://cloud.example.com")
	if got := settings.GetServerURL(); got != "https://cloud.example.com" {
		t.Errorf("Expected custom server URL, got %s", got)
	}

	// Trailing slash and whitespace are normalized
	settings.SetServerURL("  https://cloud.example.com/  ")
	if got := settings.GetServerURL(); got != "https://cloud.example.com" {
		t.Errorf("Expected normalized server URL, got %s", got)
	}

	// Empty resets to default
	settings.SetServerURL("")
	if got := settings.GetServerURL(); got != DefaultServerURL {
		t.Errorf("Empty URL should default to %s, got %s", DefaultServerURL, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestDefaultViewMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetDefaultViewMode()
	if mode != DefaultViewMode {
		t.Errorf("Expected default view mode %s, got %s", DefaultViewMode, mode)
	}

	// Test setting custom value
	settings.SetDefaultViewMode("list")
	if got := settings.GetDefaultViewMode(); got != "list" {
		t.Errorf("Expected view mode 'list', got %s", got)
	}

	// Unknown values fall back to the default
	settings.SetDefaultViewMode("mosaic")
	if got := settings.GetDefaultViewMode(); got != DefaultViewMode {
		t.Errorf("Unknown view mode should default to %s, got %s", DefaultViewMode, got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
