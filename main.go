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

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.omnicloud.desktop"
	AppName = "OmniCloud"

	WindowWidth  = 900
	WindowHeight = 640
)

func main() {
	// Log version information
	fmt.Printf("OmniCloud v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.New(api.Config{BaseURL: settings.GetServerURL()})

	gallerySvc := gallery.NewService(client)
	uploadSvc := upload.NewService(client)
	playbackCtl := playback.NewController(playback.StreamTransportFactory(nil))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, gallerySvc, uploadSvc, playbackCtl)

	// Initial fetch once the event loop is up
	go func() {
		if err := gallerySvc.Refresh(context.Background()); err != nil {
			fmt.Printf("initial refresh failed: %v\n", err)
		}
	}()

	// Show and run
	myWindow.ShowAndRun()
}
