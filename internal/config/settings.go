package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL       = "server_url"
	KeyLanguage        = "app_language"
	KeyDefaultViewMode = "default_view_mode"
)

// Default values
const (
	DefaultServerURL = "http://localhost:8080"
	DefaultLanguage  = "system"
	DefaultViewMode  = "grid"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured storage server base URL
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the storage server base URL
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimSpace(url)
	url = strings.TrimRight(url, "/")
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDefaultViewMode returns the view mode the gallery opens with
func (s *Settings) GetDefaultViewMode() string {
	mode := s.app.Preferences().String(KeyDefaultViewMode)
	if mode != "grid" && mode != "list" {
		s.SetDefaultViewMode(DefaultViewMode)
		return DefaultViewMode
	}
	return mode
}

// SetDefaultViewMode sets the view mode the gallery opens with
func (s *Settings) SetDefaultViewMode(mode string) {
	if mode != "grid" && mode != "list" {
		mode = DefaultViewMode
	}
	s.app.Preferences().SetString(KeyDefaultViewMode, mode)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
