package avatar

import (
	"fmt"
	"math"

	"github.com/decker502/avatarview/internal/model"
)

// Playback advances the model's animation clips and keeps the current
// pose. Clips run concurrently: each started clip has its own local
// clock and loops over its own duration, and clips started later win
// when two clips animate the same node channel.
type Playback struct {
	model  *model.Model
	rest   []model.Transform
	pose   []model.Transform
	active []activeClip
}

type activeClip struct {
	clip *model.Clip
	time float64
}

// NewPlayback creates playback for the model with the rest pose
// applied and no clips running.
func NewPlayback(m *model.Model) *Playback {
	return &Playback{
		model: m,
		rest:  model.NewPose(m),
		pose:  model.NewPose(m),
	}
}

// StartClip begins looping clip index from its first frame. Starting a
// clip that is already running restarts its local clock.
func (p *Playback) StartClip(index int) error {
	if index < 0 || index >= len(p.model.Clips) {
		return fmt.Errorf("clip index %d out of range (model has %d clips)", index, len(p.model.Clips))
	}
	clip := &p.model.Clips[index]
	if len(clip.Channels) == 0 {
		return fmt.Errorf("clip %q has no playable channels", clip.Name)
	}
	for i := range p.active {
		if p.active[i].clip == clip {
			p.active[i].time = 0
			return nil
		}
	}
	p.active = append(p.active, activeClip{clip: clip})
	return nil
}

// Update advances all running clips by dt seconds and re-samples the
// pose. The pose is rebuilt from the rest pose every frame so stopped
// channels fall back to their bind values.
func (p *Playback) Update(dt float64) {
	if len(p.active) == 0 {
		return
	}
	copy(p.pose, p.rest)
	for i := range p.active {
		a := &p.active[i]
		a.time += dt
		if a.clip.Duration > 0 {
			a.time = math.Mod(a.time, a.clip.Duration)
		}
		a.clip.Sample(a.time, p.pose)
	}
}

// Pose returns the current local transforms, indexed by node. The
// slice is reused between updates; callers must not retain it.
func (p *Playback) Pose() []model.Transform {
	return p.pose
}

// ActiveClips returns the names of the clips currently looping, in
// start order.
func (p *Playback) ActiveClips() []string {
	names := make([]string, len(p.active))
	for i, a := range p.active {
		names[i] = a.clip.Name
	}
	return names
}
