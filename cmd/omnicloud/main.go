package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/omnicloud/omnicloud-desktop/internal/api"
	"github.com/omnicloud/omnicloud-desktop/internal/config"
	"github.com/omnicloud/omnicloud-desktop/internal/gallery"
	"github.com/omnicloud/omnicloud-desktop/internal/playback"
	"github.com/omnicloud/omnicloud-desktop/internal/ui"
	"github.com/omnicloud/omnicloud-desktop/internal/upload"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.omnicloud.desktop")
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("OmniCloud")
	myWindow.Resize(fyne.NewSize(900, 640))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.New(api.Config{BaseURL: settings.GetServerURL()})

	gallerySvc := gallery.NewService(client)
	uploadSvc := upload.NewService(client)
	playbackCtl := playback.NewController(playback.StreamTransportFactory(nil))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, gallerySvc, uploadSvc, playbackCtl)

	go func() {
		if err := gallerySvc.Refresh(context.Background()); err != nil {
			fmt.Printf("initial refresh failed: %v\n", err)
		}
	}()

	// Show and run
	myWindow.ShowAndRun()
}
