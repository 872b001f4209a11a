package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/omnicloud/omnicloud-desktop/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry *widget.Entry
	languageSelect *widget.Select
	viewModeSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings are persisted so the caller can repoint the API client.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Server address
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerURL)

	// Language selection
	languageOptions := []string{"system"}
	for code := range sd.localization.GetAvailableLanguages() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Default view mode selection
	sd.viewModeSelect = widget.NewSelect([]string{"grid", "list"}, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyDefaultView)+":"),
		sd.viewModeSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerURL())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.viewModeSelect.SetSelected(sd.settings.GetDefaultViewMode())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.serverURLEntry.Text != "" {
		sd.settings.SetServerURL(sd.serverURLEntry.Text)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.viewModeSelect.Selected != "" {
		sd.settings.SetDefaultViewMode(sd.viewModeSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
