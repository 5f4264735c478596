package model

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// NewPose returns a fresh pose initialized to the model's rest transforms.
// A pose is one local transform per node; playback overwrites the entries
// that animation channels target and leaves the rest untouched.
func NewPose(m *Model) []Transform {
	pose := make([]Transform, len(m.Nodes))
	for i := range m.Nodes {
		pose[i] = m.Nodes[i].Rest
	}
	return pose
}

// Sample evaluates every channel of the clip at time t (seconds) and
// writes the resulting values into pose. Values before the first
// keyframe clamp to it, values after the last keyframe clamp to the
// last one; in between, translation/scale interpolate linearly and
// rotations use spherical interpolation, unless the channel is a STEP
// channel which holds the previous keyframe.
func (c *Clip) Sample(t float64, pose []Transform) {
	for i := range c.Channels {
		ch := &c.Channels[i]
		if ch.Node < 0 || ch.Node >= len(pose) || len(ch.Times) == 0 {
			continue
		}
		k, frac := ch.locate(float32(t))
		switch ch.Path {
		case PathRotation:
			pose[ch.Node].Rotation = ch.sampleQuat(k, frac)
		case PathTranslation:
			pose[ch.Node].Translation = ch.sampleVec(k, frac)
		case PathScale:
			pose[ch.Node].Scale = ch.sampleVec(k, frac)
		}
	}
}

// locate returns the keyframe index k and interpolation fraction in
// [0,1) such that t falls between Times[k] and Times[k+1]. Out-of-range
// times clamp to the first or last keyframe with fraction 0.
func (ch *Channel) locate(t float32) (int, float32) {
	times := ch.Times
	n := len(times)
	if t <= times[0] || n == 1 {
		return 0, 0
	}
	if t >= times[n-1] {
		return n - 1, 0
	}
	// First index with times[i] > t; the segment starts one before it.
	hi := sort.Search(n, func(i int) bool { return times[i] > t })
	k := hi - 1
	span := times[hi] - times[k]
	if span <= 0 {
		return k, 0
	}
	if ch.Step {
		return k, 0
	}
	return k, (t - times[k]) / span
}

func (ch *Channel) sampleVec(k int, frac float32) mgl32.Vec3 {
	if frac == 0 || k+1 >= len(ch.Vec) {
		return ch.Vec[k]
	}
	a, b := ch.Vec[k], ch.Vec[k+1]
	return a.Add(b.Sub(a).Mul(frac))
}

func (ch *Channel) sampleQuat(k int, frac float32) mgl32.Quat {
	if frac == 0 || k+1 >= len(ch.Quat) {
		return ch.Quat[k]
	}
	return mgl32.QuatSlerp(ch.Quat[k], ch.Quat[k+1], frac)
}

// GlobalMatrices composes pose-local transforms down the hierarchy and
// returns one model-space matrix per node. Nodes is guaranteed to be
// ordered parent-before-child by the loader, so a single forward pass
// suffices. The out slice is reused when it has the right length.
func GlobalMatrices(m *Model, pose []Transform, out []mgl32.Mat4) []mgl32.Mat4 {
	if len(out) != len(m.Nodes) {
		out = make([]mgl32.Mat4, len(m.Nodes))
	}
	for i := range m.Nodes {
		local := pose[i].Mat4()
		if parent := m.Nodes[i].Parent; parent >= 0 {
			out[i] = out[parent].Mul4(local)
		} else {
			out[i] = local
		}
	}
	return out
}
