package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/omnicloud/omnicloud-desktop/internal/model"
	"github.com/omnicloud/omnicloud-desktop/internal/platform"
	"github.com/omnicloud/omnicloud-desktop/internal/playback"
)

// PreviewWindow renders the active playback session in its own window.
// Images are shown inline, documents get a download affordance, and video or
// audio sessions get transport controls wired to the playback controller.
type PreviewWindow struct {
	app          fyne.App
	controller   *playback.Controller
	localization *Localization
	thumbnails   *ThumbnailCache

	window fyne.Window

	titleLabel   *widget.Label
	glyphLabel   *widget.Label
	imageView    *canvas.Image
	playPauseBtn *widget.Button
	seekSlider   *widget.Slider
	timeLabel    *widget.Label
	rateSelect   *widget.Select
	muteCheck    *widget.Check
	externalBtn  *widget.Button

	// guards control widgets while they are being synced from controller
	// state, so programmatic updates do not loop back as user actions
	updatingControls bool
}

// NewPreviewWindow creates the preview window manager and subscribes it to
// controller updates
func NewPreviewWindow(app fyne.App, controller *playback.Controller, localization *Localization, thumbnails *ThumbnailCache) *PreviewWindow {
	pw := &PreviewWindow{
		app:          app,
		controller:   controller,
		localization: localization,
		thumbnails:   thumbnails,
	}

	pw.createControls()
	controller.SetUpdateCallback(pw.onPlaybackUpdate)
	return pw
}

// createControls creates the transport control widgets
func (pw *PreviewWindow) createControls() {
	pw.titleLabel = widget.NewLabel("")
	pw.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pw.titleLabel.Alignment = fyne.TextAlignCenter
	pw.titleLabel.Truncation = fyne.TextTruncateEllipsis

	pw.glyphLabel = widget.NewLabel("")
	pw.glyphLabel.Alignment = fyne.TextAlignCenter

	pw.imageView = canvas.NewImageFromResource(nil)
	pw.imageView.FillMode = canvas.ImageFillContain

	pw.playPauseBtn = widget.NewButton(IconPlay, func() {
		pw.controller.TogglePlay()
	})
	pw.playPauseBtn.Importance = widget.HighImportance

	pw.seekSlider = widget.NewSlider(0, 1)
	pw.seekSlider.OnChangeEnded = func(value float64) {
		if pw.updatingControls {
			return
		}
		pw.controller.Seek(value)
	}

	pw.timeLabel = widget.NewLabel("")
	pw.timeLabel.TextStyle = fyne.TextStyle{Monospace: true}

	rateOptions := make([]string, 0, len(playback.Rates()))
	for _, rate := range playback.Rates() {
		rateOptions = append(rateOptions, rateLabel(rate))
	}
	pw.rateSelect = widget.NewSelect(rateOptions, func(selected string) {
		if pw.updatingControls {
			return
		}
		for _, rate := range playback.Rates() {
			if rateLabel(rate) == selected {
				if err := pw.controller.SetRate(rate); err != nil {
					log.Printf("Set playback rate failed: %v", err)
				}
				return
			}
		}
	})

	pw.muteCheck = widget.NewCheck(pw.localization.GetText(KeyMuted), func(checked bool) {
		if pw.updatingControls {
			return
		}
		pw.controller.SetMuted(checked)
	})

	pw.externalBtn = widget.NewButton(pw.localization.GetText(KeyOpenExternally), pw.onOpenExternally)
}

// Show opens (or re-focuses) the preview window for the current session
func (pw *PreviewWindow) Show() {
	if pw.window == nil {
		pw.window = pw.app.NewWindow(pw.controller.Title())
		pw.window.Resize(fyne.NewSize(PreviewWindowWidth, PreviewWindowHeight))
		pw.window.SetOnClosed(func() {
			pw.window = nil
			pw.controller.Close()
		})
	}

	pw.window.SetTitle(pw.controller.Title())
	pw.window.SetContent(pw.buildContent())
	pw.refreshControls()
	pw.window.Show()
	pw.window.RequestFocus()
}

// buildContent assembles the window content for the session's category
func (pw *PreviewWindow) buildContent() fyne.CanvasObject {
	pw.titleLabel.SetText(pw.controller.Title())

	switch pw.controller.Category() {
	case model.CategoryImage:
		return pw.buildImageContent()
	case model.CategoryVideo, model.CategoryAudio:
		return pw.buildTransportContent()
	default:
		return pw.buildDocumentContent()
	}
}

// buildImageContent shows the image inline, fetched in the background
func (pw *PreviewWindow) buildImageContent() fyne.CanvasObject {
	pw.imageView.Resource = nil
	pw.imageView.Refresh()

	item := pw.controller.Item()
	if item != nil {
		pw.thumbnails.Load(item.ID, pw.controller.SourceURL(), func(res fyne.Resource) {
			fyne.Do(func() {
				pw.imageView.Resource = res
				pw.imageView.Refresh()
			})
		})
	}

	downloadBtn := widget.NewButton(pw.localization.GetText(KeyDownloadFile), pw.onOpenExternally)
	bottom := container.NewVBox(pw.titleLabel, container.NewCenter(downloadBtn))
	return container.NewBorder(nil, bottom, nil, nil, pw.imageView)
}

// buildDocumentContent shows the download affordance for non-renderable types
func (pw *PreviewWindow) buildDocumentContent() fyne.CanvasObject {
	message := widget.NewLabel(pw.localization.GetText(KeyDownloadToView))
	message.Wrapping = fyne.TextWrapWord
	message.Alignment = fyne.TextAlignCenter

	downloadBtn := widget.NewButton(pw.localization.GetText(KeyDownloadFile), pw.onOpenExternally)
	downloadBtn.Importance = widget.HighImportance

	center := container.NewVBox(pw.titleLabel, message, container.NewCenter(downloadBtn))
	return container.NewCenter(center)
}

// buildTransportContent shows the clock-driven transport controls
func (pw *PreviewWindow) buildTransportContent() fyne.CanvasObject {
	if pw.controller.Category() == model.CategoryAudio {
		pw.glyphLabel.SetText(IconMusic)
	} else {
		pw.glyphLabel.SetText(IconVideo)
	}

	controls := container.NewHBox(
		pw.playPauseBtn,
		pw.timeLabel,
		widget.NewLabel(pw.localization.GetText(KeySpeed)),
		pw.rateSelect,
		pw.muteCheck,
		pw.externalBtn,
	)

	bottom := container.NewVBox(pw.seekSlider, container.NewCenter(controls))
	center := container.NewCenter(container.NewVBox(pw.glyphLabel, pw.titleLabel))
	return container.NewBorder(nil, bottom, nil, nil, center)
}

// onOpenExternally hands the media URL to the system handler. The in-app
// transport keeps running; the user closes the window when done.
func (pw *PreviewWindow) onOpenExternally() {
	url := pw.controller.SourceURL()
	if url == "" {
		return
	}
	if err := platform.OpenURL(url); err != nil {
		log.Printf("Open URL failed: %v", err)
		if pw.window != nil {
			widget.ShowPopUp(widget.NewLabel(pw.localization.GetText(KeyErrorOpeningLink)+": "+err.Error()), pw.window.Canvas())
		}
	}
}

// onPlaybackUpdate handles controller state changes; may fire off the UI thread
func (pw *PreviewWindow) onPlaybackUpdate() {
	fyne.Do(pw.refreshControls)
}

// refreshControls syncs the transport widgets with controller state
func (pw *PreviewWindow) refreshControls() {
	if pw.window == nil {
		return
	}

	pw.updatingControls = true
	defer func() { pw.updatingControls = false }()

	switch pw.controller.State() {
	case playback.StatePlaying:
		pw.playPauseBtn.SetText(IconPause)
		pw.playPauseBtn.Enable()
	case playback.StateLoading:
		pw.playPauseBtn.SetText(IconPlay)
		pw.playPauseBtn.Disable()
	default:
		pw.playPauseBtn.SetText(IconPlay)
		pw.playPauseBtn.Enable()
	}

	current := pw.controller.CurrentTime()
	duration := pw.controller.Duration()

	if duration > 0 {
		pw.seekSlider.Max = duration
		pw.seekSlider.Enable()
	} else {
		pw.seekSlider.Max = 1
		pw.seekSlider.Disable()
	}
	pw.seekSlider.SetValue(current)

	pw.timeLabel.SetText(playback.FormatTime(current) + TimeSeparator + playback.FormatTime(duration))
	pw.rateSelect.SetSelected(rateLabel(pw.controller.Rate()))
	pw.muteCheck.SetChecked(pw.controller.Muted())
}

// rateLabel formats a playback speed for the rate selector
func rateLabel(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64) + "x"
}
