package avatar

import (
	"log"

	"github.com/decker502/avatarview/internal/model"
	"github.com/decker502/avatarview/pkg/config"
	"github.com/decker502/avatarview/pkg/game"
)

// LoadStateFunc is called exactly once when the avatar load reaches a
// terminal state: (true, nil) on success, (false, err) on failure.
type LoadStateFunc func(loaded bool, err error)

// Presenter drives the 3D content of the viewer scene. Each Update it
// polls the asset Source; on the loading→loaded transition it notifies
// the host once and schedules the model's animation clips with a
// staggered start, then keeps clip playback and the procedural idle
// motion advancing.
type Presenter struct {
	source    Source
	scheduler *game.TaskScheduler
	onLoad    LoadStateFunc

	playback   *Playback
	model      *model.Model
	elapsed    float64
	notified   bool
	idleMotion bool
}

// NewPresenter wires the presenter to an asset source and the scene's
// task scheduler. The callback may be nil.
func NewPresenter(source Source, scheduler *game.TaskScheduler, onLoad LoadStateFunc) *Presenter {
	return &Presenter{
		source:     source,
		scheduler:  scheduler,
		onLoad:     onLoad,
		idleMotion: true,
	}
}

// SetIdleMotion toggles the procedural bob/yaw motion. Clip playback is
// unaffected.
func (p *Presenter) SetIdleMotion(enabled bool) {
	p.idleMotion = enabled
}

// Update advances the presenter clock by dt seconds, observes the asset
// source and steps clip playback.
func (p *Presenter) Update(dt float64) {
	p.elapsed += dt

	if !p.notified {
		state, m, err := p.source.Snapshot()
		switch state {
		case StateLoaded:
			p.notified = true
			p.adopt(m)
			if p.onLoad != nil {
				p.onLoad(true, nil)
			}
		case StateFailed:
			p.notified = true
			if p.onLoad != nil {
				p.onLoad(false, err)
			}
		}
	}

	if p.playback != nil {
		p.playback.Update(dt)
	}
}

// adopt takes ownership of the loaded model and schedules its clips:
// clip i starts i*100ms after the loaded transition, so overlapping
// clips phase in rather than snapping on simultaneously.
func (p *Presenter) adopt(m *model.Model) {
	p.model = m
	p.playback = NewPlayback(m)
	for i := range m.Clips {
		i := i
		p.scheduler.After(float64(i)*config.ClipStaggerDelay, func() {
			if err := p.playback.StartClip(i); err != nil {
				log.Printf("[Presenter] Skipping clip %d: %v", i, err)
			}
		})
	}
}

// Ready reports whether a model has been adopted and can be drawn.
func (p *Presenter) Ready() bool {
	return p.model != nil
}

// Model returns the adopted model, or nil before the loaded transition.
func (p *Presenter) Model() *model.Model {
	return p.model
}

// Pose returns the current animated pose, or nil before the loaded
// transition.
func (p *Presenter) Pose() []model.Transform {
	if p.playback == nil {
		return nil
	}
	return p.playback.Pose()
}

// ActiveClips returns the names of the clips currently looping.
func (p *Presenter) ActiveClips() []string {
	if p.playback == nil {
		return nil
	}
	return p.playback.ActiveClips()
}

// Offset returns the idle bob offset for the current frame, zero when
// idle motion is disabled or no model is shown.
func (p *Presenter) Offset() float64 {
	if !p.idleMotion || p.model == nil {
		return 0
	}
	return IdleOffset(p.elapsed)
}

// Yaw returns the idle yaw angle for the current frame, zero when idle
// motion is disabled or no model is shown.
func (p *Presenter) Yaw() float64 {
	if !p.idleMotion || p.model == nil {
		return 0
	}
	return IdleYaw(p.elapsed)
}
