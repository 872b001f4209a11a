package ui

import (
	"context"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/omnicloud/omnicloud-desktop/internal/api"
	"github.com/omnicloud/omnicloud-desktop/internal/config"
	"github.com/omnicloud/omnicloud-desktop/internal/gallery"
	"github.com/omnicloud/omnicloud-desktop/internal/model"
	"github.com/omnicloud/omnicloud-desktop/internal/platform"
	"github.com/omnicloud/omnicloud-desktop/internal/playback"
	"github.com/omnicloud/omnicloud-desktop/internal/upload"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	settings     *config.Settings
	localization *Localization

	client      *api.Client
	gallerySvc  *gallery.Service
	uploadSvc   *upload.Service
	playbackCtl *playback.Controller
	thumbnails  *ThumbnailCache
	preview     *PreviewWindow

	// Status bar
	statusLabel *widget.Label
	refreshBtn  *widget.Button
	settingsBtn *widget.Button

	// Upload card
	descriptionEntry *widget.Entry
	chooseFileBtn    *widget.Button
	uploadStatus     *widget.Label

	// Stream card
	streamEntry *widget.Entry
	streamBtn   *widget.Button

	// Filters
	categoryTabs  *container.AppTabs
	categories    []model.Category
	searchEntry   *widget.Entry
	viewToggleBtn *widget.Button

	// Content area states
	itemList    *widget.List
	itemGrid    *widget.GridWrap
	loadingBox  fyne.CanvasObject
	errorBox    fyne.CanvasObject
	emptyBox    fyne.CanvasObject
	errorLabel  *widget.Label
	contentArea *fyne.Container

	visibleItems []model.FileItem
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client, gallerySvc *gallery.Service, uploadSvc *upload.Service, playbackCtl *playback.Controller) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	thumbnails := NewThumbnailCache(nil)

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		client:       client,
		gallerySvc:   gallerySvc,
		uploadSvc:    uploadSvc,
		playbackCtl:  playbackCtl,
		thumbnails:   thumbnails,
		categories:   model.FilterCategories(),
	}

	ui.preview = NewPreviewWindow(app, playbackCtl, localization, thumbnails)

	// The gallery opens in the configured view mode
	gallerySvc.SetViewMode(gallery.ViewMode(settings.GetDefaultViewMode()))

	log.Printf("RootUI initialized with server: %s", client.BaseURL())

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service callbacks drive all view refreshes
	gallerySvc.SetUpdateCallback(ui.onGalleryUpdate)
	uploadSvc.SetUpdateCallback(ui.onUploadUpdate)
	uploadSvc.SetUploadedCallback(ui.onUploaded)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Status bar
	ui.statusLabel = widget.NewLabel(IconOffline + " " + ui.localization.GetText(KeyOffline))
	ui.refreshBtn = widget.NewButton(IconRefresh, ui.onRefreshClick)
	ui.refreshBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	statusBar := container.NewBorder(nil, nil, ui.statusLabel, container.NewHBox(ui.refreshBtn, ui.settingsBtn))

	// Upload card
	ui.descriptionEntry = widget.NewEntry()
	ui.descriptionEntry.SetPlaceHolder(ui.localization.GetText(KeyDescriptionHint))

	ui.chooseFileBtn = widget.NewButton(IconUpload+" "+ui.localization.GetText(KeyChooseFile), ui.onChooseFile)
	ui.chooseFileBtn.Importance = widget.HighImportance

	ui.uploadStatus = widget.NewLabel("")
	ui.uploadStatus.Hide()

	uploadRow := container.NewBorder(nil, ui.uploadStatus, nil, ui.chooseFileBtn, ui.descriptionEntry)

	// Stream card
	ui.streamEntry = widget.NewEntry()
	ui.streamEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterStreamURL))
	ui.streamEntry.OnSubmitted = func(string) {
		ui.onPlayStream()
	}

	ui.streamBtn = widget.NewButton(IconStream+" "+ui.localization.GetText(KeyPlayStream), ui.onPlayStream)

	streamRow := container.NewBorder(nil, nil, nil, ui.streamBtn, ui.streamEntry)

	// Category tabs
	tabItems := make([]*container.TabItem, 0, len(ui.categories))
	for _, category := range ui.categories {
		tabItems = append(tabItems, container.NewTabItem(category.Label(), widget.NewLabel("")))
	}
	ui.categoryTabs = container.NewAppTabs(tabItems...)
	ui.categoryTabs.OnSelected = func(*container.TabItem) {
		index := ui.categoryTabs.SelectedIndex()
		if index >= 0 && index < len(ui.categories) {
			ui.gallerySvc.SetCategory(ui.categories[index])
		}
	}

	// Search and view toggle
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
	ui.searchEntry.OnChanged = func(query string) {
		ui.gallerySvc.SetSearchQuery(query)
	}

	ui.viewToggleBtn = widget.NewButton(IconList, ui.onToggleView)
	ui.viewToggleBtn.Importance = widget.LowImportance

	filterRow := container.NewBorder(nil, nil, nil, ui.viewToggleBtn, ui.searchEntry)

	// Content area states
	ui.itemList = widget.NewList(
		func() int {
			return len(ui.visibleItems)
		},
		func() fyne.CanvasObject { return NewItemRow(model.FileItem{}) },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateListRow(id, obj) },
	)
	ui.itemList.OnSelected = func(id widget.ListItemID) {
		ui.itemList.UnselectAll()
		ui.openItemAt(id)
	}

	ui.itemGrid = widget.NewGridWrap(
		func() int {
			return len(ui.visibleItems)
		},
		func() fyne.CanvasObject { return NewItemCard(ui.thumbnails) },
		func(id widget.GridWrapItemID, obj fyne.CanvasObject) { ui.updateGridCell(id, obj) },
	)
	ui.itemGrid.OnSelected = func(id widget.GridWrapItemID) {
		ui.itemGrid.UnselectAll()
		ui.openItemAt(id)
	}

	loadingLabel := widget.NewLabel(ui.localization.GetText(KeyLoadingFiles))
	loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingBox = container.NewCenter(container.NewVBox(widget.NewProgressBarInfinite(), loadingLabel))

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Importance = widget.DangerImportance
	retryBtn := widget.NewButton(ui.localization.GetText(KeyRetry), ui.onRefreshClick)
	retryBtn.Importance = widget.HighImportance
	ui.errorBox = container.NewCenter(container.NewVBox(ui.errorLabel, container.NewCenter(retryBtn)))

	emptyLabel := widget.NewLabel(ui.localization.GetText(KeyNoFiles))
	emptyLabel.Alignment = fyne.TextAlignCenter
	ui.emptyBox = container.NewCenter(emptyLabel)

	ui.contentArea = container.NewStack(ui.loadingBox, ui.errorBox, ui.emptyBox, ui.itemList, ui.itemGrid)

	top := container.NewVBox(
		statusBar,
		widget.NewSeparator(),
		uploadRow,
		streamRow,
		widget.NewSeparator(),
		ui.categoryTabs,
		filterRow,
	)

	content := container.NewBorder(top, nil, nil, nil, ui.contentArea)
	ui.window.SetContent(content)

	ui.refreshGallery()
	log.Printf("UI setup completed successfully")
}

// updateListRow updates a list row with current item data
func (ui *RootUI) updateListRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visibleItems) {
		return
	}
	if row, ok := obj.(*ItemRow); ok {
		row.UpdateItem(ui.visibleItems[id])
	}
}

// updateGridCell updates a grid cell with current item data
func (ui *RootUI) updateGridCell(id widget.GridWrapItemID, obj fyne.CanvasObject) {
	if id >= len(ui.visibleItems) {
		return
	}
	if card, ok := obj.(*ItemCard); ok {
		item := ui.visibleItems[id]
		card.UpdateItem(item, ui.client.DownloadURL(item.ID))
	}
}

// openItemAt opens the preview for the visible item at the given index
func (ui *RootUI) openItemAt(index int) {
	if index < 0 || index >= len(ui.visibleItems) {
		return
	}

	item := ui.visibleItems[index]
	if err := ui.playbackCtl.OpenItem(item, ui.client.DownloadURL(item.ID)); err != nil {
		log.Printf("Open preview failed for %s: %v", item.ID, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPreviewFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}
	ui.preview.Show()
}

// onRefreshClick triggers a gallery refresh in the background
func (ui *RootUI) onRefreshClick() {
	go func() {
		if err := ui.gallerySvc.Refresh(context.Background()); err != nil {
			log.Printf("Manual refresh failed: %v", err)
		}
	}()
}

// onToggleView switches between grid and list rendering
func (ui *RootUI) onToggleView() {
	if ui.gallerySvc.ViewMode() == gallery.ViewModeGrid {
		ui.gallerySvc.SetViewMode(gallery.ViewModeList)
	} else {
		ui.gallerySvc.SetViewMode(gallery.ViewModeGrid)
	}
}

// onChooseFile opens the file picker and submits the chosen file
func (ui *RootUI) onChooseFile() {
	description := ui.descriptionEntry.Text

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File picker error: %v", err)
			return
		}
		if reader == nil {
			return // cancelled
		}

		go ui.submitUpload(reader, description)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(model.AllSupportedExtensions()))
	fd.Show()
}

// submitUpload runs the upload off the UI thread and reports the outcome
func (ui *RootUI) submitUpload(reader fyne.URIReadCloser, description string) {
	defer reader.Close()

	filename := reader.URI().Name()
	err := ui.uploadSvc.Submit(context.Background(), filename, reader, description)

	fyne.Do(func() {
		if err != nil {
			ui.uploadStatus.Importance = widget.DangerImportance
			ui.uploadStatus.SetText(ui.localization.GetText(KeyUploadFailed) + ": " + err.Error())
			ui.uploadStatus.Show()
			return
		}

		ui.descriptionEntry.SetText("")
		ui.uploadStatus.Importance = widget.SuccessImportance
		ui.uploadStatus.SetText(ui.localization.GetText(KeyUploadCompleted) + MiddleDotSeparator + filename)
		ui.uploadStatus.Show()
	})
}

// onPlayStream opens an external stream URL in the preview window
func (ui *RootUI) onPlayStream() {
	url := strings.TrimSpace(ui.streamEntry.Text)
	if url == "" {
		return
	}

	if err := platform.ValidateURL(url); err != nil {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyInvalidURL)+": "+err.Error()), ui.window.Canvas())
		return
	}

	if err := ui.playbackCtl.OpenExternal(url); err != nil {
		log.Printf("Open external stream failed: %v", err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyPreviewFailed)+": "+err.Error()), ui.window.Canvas())
		return
	}
	ui.preview.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies persisted settings to the running app
func (ui *RootUI) onSettingsSaved() {
	ui.client.SetBaseURL(ui.settings.GetServerURL())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.onRefreshClick()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.descriptionEntry.SetPlaceHolder(ui.localization.GetText(KeyDescriptionHint))
	ui.chooseFileBtn.SetText(IconUpload + " " + ui.localization.GetText(KeyChooseFile))
	ui.streamEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterStreamURL))
	ui.streamBtn.SetText(IconStream + " " + ui.localization.GetText(KeyPlayStream))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchHint))
}

// onGalleryUpdate handles gallery state changes; may fire off the UI thread
func (ui *RootUI) onGalleryUpdate() {
	fyne.Do(ui.refreshGallery)
}

// onUploadUpdate handles uploading flag changes; may fire off the UI thread
func (ui *RootUI) onUploadUpdate() {
	fyne.Do(func() {
		if ui.uploadSvc.Uploading() {
			ui.chooseFileBtn.Disable()
			ui.uploadStatus.Importance = widget.MediumImportance
			ui.uploadStatus.SetText(ui.localization.GetText(KeyUploading))
			ui.uploadStatus.Show()
		} else {
			ui.chooseFileBtn.Enable()
		}
	})
}

// onUploaded reconciles the gallery after a successful upload. The server
// assigns the new item's identity, so a full refresh is the only way to get it.
func (ui *RootUI) onUploaded() {
	go func() {
		if err := ui.gallerySvc.Refresh(context.Background()); err != nil {
			log.Printf("Post-upload refresh failed: %v", err)
		}
	}()
}

// refreshGallery syncs the status bar and content area with gallery state
func (ui *RootUI) refreshGallery() {
	// Status indicator
	if ui.gallerySvc.Online() {
		ui.statusLabel.Importance = widget.SuccessImportance
		ui.statusLabel.SetText(IconOnline + " " + ui.localization.GetText(KeyOnline))
	} else {
		ui.statusLabel.Importance = widget.DangerImportance
		ui.statusLabel.SetText(IconOffline + " " + ui.localization.GetText(KeyOffline))
	}

	ui.visibleItems = ui.gallerySvc.VisibleItems()

	// View toggle shows the mode a click switches to
	if ui.gallerySvc.ViewMode() == gallery.ViewModeGrid {
		ui.viewToggleBtn.SetText(IconList)
	} else {
		ui.viewToggleBtn.SetText(IconGrid)
	}

	ui.loadingBox.Hide()
	ui.errorBox.Hide()
	ui.emptyBox.Hide()
	ui.itemList.Hide()
	ui.itemGrid.Hide()

	switch {
	case ui.gallerySvc.Loading():
		ui.loadingBox.Show()
	case ui.gallerySvc.LastError() != "":
		ui.errorLabel.SetText(ui.gallerySvc.LastError())
		ui.errorBox.Show()
	case len(ui.visibleItems) == 0:
		ui.emptyBox.Show()
	case ui.gallerySvc.ViewMode() == gallery.ViewModeList:
		ui.itemList.Show()
		ui.itemList.Refresh()
	default:
		ui.itemGrid.Show()
		ui.itemGrid.Refresh()
	}

	ui.contentArea.Refresh()
}
