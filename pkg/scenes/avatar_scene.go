package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/avatarview/pkg/avatar"
	"github.com/decker502/avatarview/pkg/config"
	"github.com/decker502/avatarview/pkg/game"
	"github.com/decker502/avatarview/pkg/render"
	"github.com/decker502/avatarview/pkg/utils"
)

// AvatarScene is the avatar viewer screen. It owns the screen-level
// state machine (Initializing -> LoadingModel -> Ready, with Error
// overriding everything), the loading indicators, and the status badge;
// the 3D content itself is delegated to the presenter.
type AvatarScene struct {
	resourceManager *game.ResourceManager
	settingsManager *game.SettingsManager
	viewerConfig    *config.ViewerConfig
	palette         config.Palette

	scheduler *game.TaskScheduler
	presenter *avatar.Presenter
	renderer  *render.Renderer
	logFilter *utils.LogFilter

	// Screen state flags; the displayed status is derived from these
	// every frame, never stored
	bridgeReady bool  // render surface handshake completed
	modelLoaded bool  // avatar asset arrived
	loadErr     error // terminal failure, from any stage

	elapsedTime float64 // seconds since the scene mounted
	animTime    float64 // indicator clock; freezes once the status is terminal
	disposed    bool

	// Font resources
	statusFont *text.GoTextFace // status badge
	errorFont  *text.GoTextFace // error overlay
}

// NewAvatarScene creates the avatar screen. The asset source is shared
// app state: the load typically starts before the scene exists, and the
// scene picks up whatever state it is in.
func NewAvatarScene(rm *game.ResourceManager, sm *game.SettingsManager, source avatar.Source, cfg *config.ViewerConfig) *AvatarScene {
	scene := &AvatarScene{
		resourceManager: rm,
		settingsManager: sm,
		viewerConfig:    cfg,
		palette:         cfg.Colors.Parse(),
		scheduler:       game.NewTaskScheduler(),
		logFilter:       utils.NewLogFilter(cfg.LogFilter),
	}

	// Known-noisy decoder/backend log lines stay suppressed while this
	// scene is mounted; Dispose releases the filter.
	scene.logFilter.Install()

	scene.presenter = avatar.NewPresenter(source, scene.scheduler, scene.onLoadStateChange)
	scene.presenter.SetIdleMotion(sm.GetSettings().IdleMotion)
	scene.renderer = render.NewRenderer(render.NewCamera(cfg.Camera), scene.palette.Wireframe)

	// The render surface reports ready a fixed interval after mount.
	scene.scheduler.After(config.BridgeReadyDelay, func() {
		scene.bridgeReady = true
		log.Printf("[AvatarScene] Render surface ready")
	})

	var err error
	if scene.statusFont, err = rm.LoadFont(config.StatusFontSize); err != nil {
		log.Printf("[AvatarScene] Warning: Failed to load status font: %v", err)
	}
	if scene.errorFont, err = rm.LoadFont(config.ErrorFontSize); err != nil {
		log.Printf("[AvatarScene] Warning: Failed to load error font: %v", err)
	}

	return scene
}

// onLoadStateChange receives the presenter's one-shot load notification.
// The first terminal state wins; anything after it is ignored.
func (s *AvatarScene) onLoadStateChange(loaded bool, err error) {
	if s.modelLoaded || s.loadErr != nil {
		return
	}
	if loaded {
		s.modelLoaded = true
		log.Printf("[AvatarScene] Avatar loaded")
		return
	}
	if err == nil {
		err = fmt.Errorf("avatar load failed")
	}
	s.loadErr = err
	log.Printf("[AvatarScene] Avatar load failed: %v", err)
}

// Status derives the displayed screen status from the current flags.
func (s *AvatarScene) Status() Status {
	return StatusOf(s.bridgeReady, s.modelLoaded, s.loadErr)
}

// Update implements game.Scene.
func (s *AvatarScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.elapsedTime += deltaTime
	s.scheduler.Update(deltaTime)

	// The presenter only runs once the surface handshake completed;
	// before that the screen shows Initializing regardless of how far
	// the background load got.
	if s.bridgeReady {
		s.presenter.Update(deltaTime)
	}

	if !s.Status().Terminal() {
		s.animTime += deltaTime
	}

	s.handleInput()
}

// handleInput processes the scene's keyboard shortcuts.
func (s *AvatarScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		settings := s.settingsManager.GetSettings()
		s.settingsManager.SetIdleMotion(!settings.IdleMotion)
		s.presenter.SetIdleMotion(settings.IdleMotion)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[AvatarScene] Warning: Failed to save settings: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		settings := s.settingsManager.GetSettings()
		s.settingsManager.SetShowStats(!settings.ShowStats)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[AvatarScene] Warning: Failed to save settings: %v", err)
		}
	}
}

// Draw implements game.Scene.
func (s *AvatarScene) Draw(screen *ebiten.Image) {
	if s.disposed || screen == nil {
		return
	}
	screen.Fill(s.palette.Background)

	status := s.Status()
	if status == StatusReady {
		s.renderer.DrawModel(screen, s.presenter.Model(), s.presenter.Pose(),
			s.presenter.Yaw(), s.presenter.Offset())
	}

	if !status.Terminal() {
		s.drawLoadingIndicators(screen)
	}
	if status == StatusError {
		s.drawErrorOverlay(screen)
	}
	s.drawStatusBadge(screen, status)

	if s.settingsManager.GetSettings().ShowStats {
		s.drawStats(screen)
	}
}

// drawLoadingIndicators draws the rotating spinner arc and the pulsing
// center dot while the screen is in a loading state.
func (s *AvatarScene) drawLoadingIndicators(screen *ebiten.Image) {
	bounds := screen.Bounds()
	cx := float32(bounds.Dx()) / 2
	cy := float32(bounds.Dy()) / 2

	// Spinner: a 270° arc, one full revolution per cycle, linear.
	const segments = 24
	const arcSpan = 1.5 * math.Pi
	base := math.Mod(s.animTime, config.SpinnerCycleDuration) / config.SpinnerCycleDuration * 2 * math.Pi
	prevX := cx + float32(math.Cos(base))*config.SpinnerRadius
	prevY := cy + float32(math.Sin(base))*config.SpinnerRadius
	for i := 1; i <= segments; i++ {
		a := base + arcSpan*float64(i)/segments
		x := cx + float32(math.Cos(a))*config.SpinnerRadius
		y := cy + float32(math.Sin(a))*config.SpinnerRadius
		vector.StrokeLine(screen, prevX, prevY, x, y,
			config.SpinnerStrokeWidth, s.palette.Loading, true)
		prevX, prevY = x, y
	}

	// Center dot: grows and shrinks once per cycle, eased both ways.
	phase := math.Mod(s.animTime, config.PulseCycleDuration) / config.PulseCycleDuration
	tri := 1 - math.Abs(2*phase-1)
	scale := config.PulseMinScale + (1-config.PulseMinScale)*utils.EaseInOutCubic(tri)
	vector.DrawFilledCircle(screen, cx, cy, float32(config.PulseDotRadius*scale),
		s.palette.Loading, true)
}

// drawStatusBadge draws the colored indicator dot and status label in
// the top-left corner.
func (s *AvatarScene) drawStatusBadge(screen *ebiten.Image, status Status) {
	var dotColor color.RGBA
	switch status {
	case StatusReady:
		dotColor = s.palette.Ready
	case StatusError:
		dotColor = s.palette.Error
	default:
		dotColor = s.palette.Loading
	}

	vector.DrawFilledCircle(screen, config.StatusBadgeX, config.StatusBadgeY,
		config.StatusDotRadius, dotColor, true)

	if s.statusFont == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.StatusBadgeX+config.StatusDotRadius*2+4,
		config.StatusBadgeY-config.StatusFontSize/2-2)
	op.ColorScale.ScaleWithColor(s.palette.Text)
	text.Draw(screen, status.Label(), s.statusFont, op)
}

// drawErrorOverlay draws the centered failure message.
func (s *AvatarScene) drawErrorOverlay(screen *ebiten.Image) {
	if s.errorFont == nil {
		return
	}
	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	title := "Failed to load avatar"
	detail := s.loadErr.Error()

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx-text.Advance(title, s.errorFont)/2, cy-config.ErrorFontSize*1.5)
	op.ColorScale.ScaleWithColor(s.palette.Error)
	text.Draw(screen, title, s.errorFont, op)

	if s.statusFont != nil {
		op = &text.DrawOptions{}
		op.GeoM.Translate(cx-text.Advance(detail, s.statusFont)/2, cy+config.ErrorFontSize*0.5)
		op.ColorScale.ScaleWithColor(s.palette.Text)
		text.Draw(screen, detail, s.statusFont, op)
	}
}

// drawStats overlays frame statistics and playback info.
func (s *AvatarScene) drawStats(screen *ebiten.Image) {
	if s.statusFont == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("Elapsed: %.1fs", s.elapsedTime),
	}
	if clips := s.presenter.ActiveClips(); len(clips) > 0 {
		lines = append(lines, fmt.Sprintf("Clips: %v", clips))
	}
	y := float64(screen.Bounds().Dy()) - 20*float64(len(lines)) - 8
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.StatusBadgeX, y)
		op.ColorScale.ScaleWithColor(s.palette.Text)
		text.Draw(screen, line, s.statusFont, op)
		y += 20
	}
}

// Dispose implements game.Disposable. It cancels every pending delayed
// task and restores the process log writer, so an unmounted scene can
// never mutate state or eat log lines afterwards.
func (s *AvatarScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.scheduler.CancelAll()
	s.logFilter.Release()
	log.Printf("[AvatarScene] Disposed")
}
