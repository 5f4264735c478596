// Package app provides the core application wrapper for the viewer.
//
// It pulls the initialization logic out of the main package so the
// desktop entry point (main.go) and the mobile bindings (mobile/) can
// share it.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/avatarview/internal/model"
	"github.com/decker502/avatarview/pkg/avatar"
	"github.com/decker502/avatarview/pkg/config"
	"github.com/decker502/avatarview/pkg/embedded"
	"github.com/decker502/avatarview/pkg/game"
	"github.com/decker502/avatarview/pkg/scenes"
	"github.com/decker502/avatarview/pkg/utils"
)

// Config defines the application startup options.
type Config struct {
	// Verbose enables detailed log output
	Verbose bool
}

// App is the application wrapper; it implements ebiten.Game.
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // delayed window resize after leaving fullscreen
	windowSizeResetCountdown int
}

// NewApp creates and initializes the viewer application.
//
// embedded.Init() must have been called before this function.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("failed to load resource config: %w", err)
	}

	viewerConfig := loadViewerConfig()

	// Persistent settings. gdata failures degrade to memory-only
	// settings rather than aborting startup. On Android the storage
	// directory must exist before gdata opens it.
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "avatarview"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings manager: %w", err)
	}

	// Kick off the avatar load before the scene exists; the scene picks
	// up whatever state the loader is in when it mounts.
	loader := avatar.NewLoader()
	loader.Start(func() (*model.Model, error) {
		return resourceManager.LoadModel(viewerConfig.Model)
	})

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewAvatarScene(resourceManager, settingsManager, loader, viewerConfig))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// loadViewerConfig reads the embedded viewer configuration, falling
// back to the built-in defaults when the file is missing or invalid.
func loadViewerConfig() *config.ViewerConfig {
	data, err := embedded.ReadFile("data/viewer.yaml")
	if err != nil {
		log.Printf("[App] Warning: viewer config not found, using defaults: %v", err)
		return config.DefaultViewerConfig()
	}
	cfg, err := config.LoadViewerConfig(data)
	if err != nil {
		log.Printf("[App] Warning: invalid viewer config, using defaults: %v", err)
		return config.DefaultViewerConfig()
	}
	return cfg
}

// Update runs one logic tick (normally 60 per second).
func (a *App) Update() error {
	// Restoring the window size right after leaving fullscreen fails on
	// some window managers; wait a few frames first.
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.ViewerWindowWidth, config.ViewerWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.ViewerWindowWidth, config.ViewerWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// Fullscreen toggling is a desktop affordance; mobile surfaces are
	// managed by the host platform.
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw renders the current scene.
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen implements ebiten.FinalScreenDrawer; it controls the
// letterbox color and scaling filter when the window aspect ratio does
// not match the logical screen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size. It is independent of the
// actual window or device size; Ebitengine handles the scaling,
// including after device rotation.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ViewerWindowWidth, config.ViewerWindowHeight
}

// GetSceneManager returns the scene manager, used for teardown when the
// app exits.
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GetSettingsManager returns the settings manager.
func (a *App) GetSettingsManager() *game.SettingsManager {
	return a.settingsManager
}

// IsVerbose reports whether verbose logging is enabled.
func (a *App) IsVerbose() bool {
	return a.verbose
}
