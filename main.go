package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/avatarview/pkg/app"
	"github.com/decker502/avatarview/pkg/config"
	"github.com/decker502/avatarview/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose log output")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	// Resources are embedded at the repo root (embed.go) and handed to
	// the embedded package before anything loads.
	embedded.Init(assetsFS, dataFS)

	viewerApp, err := app.NewApp(app.Config{Verbose: *verbose})
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	ebiten.SetWindowSize(config.ViewerWindowWidth, config.ViewerWindowHeight)
	ebiten.SetWindowTitle("Avatar Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if *fullscreen || viewerApp.GetSettingsManager().GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(viewerApp); err != nil {
		log.Fatalf("Viewer exited with error: %v", err)
	}

	// Guaranteed scene teardown: delayed tasks are cancelled and the
	// log filter is released even when the window is simply closed.
	viewerApp.GetSceneManager().Shutdown()
}
