package model

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const sampleEpsilon = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < sampleEpsilon
}

// twoNodeModel builds a parent/child pair for pose math tests.
func twoNodeModel() *Model {
	return &Model{
		Nodes: []Node{
			{Name: "parent", Parent: -1, Mesh: -1, Children: []int{1}, Rest: IdentityTransform()},
			{Name: "child", Parent: 0, Mesh: -1, Rest: IdentityTransform()},
		},
		Roots: []int{0},
	}
}

func TestSampleTranslationInterpolation(t *testing.T) {
	m := twoNodeModel()
	clip := Clip{
		Name:     "move",
		Duration: 2,
		Channels: []Channel{{
			Node:  0,
			Path:  PathTranslation,
			Times: []float32{0, 1, 2},
			Vec:   []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 0, 0}},
		}},
	}

	tests := []struct {
		time float64
		want mgl32.Vec3
	}{
		{-1, mgl32.Vec3{0, 0, 0}},  // clamp before first keyframe
		{0, mgl32.Vec3{0, 0, 0}},
		{0.5, mgl32.Vec3{0, 0.5, 0}},
		{1, mgl32.Vec3{0, 1, 0}},
		{1.25, mgl32.Vec3{0, 0.75, 0}},
		{2, mgl32.Vec3{0, 0, 0}},
		{10, mgl32.Vec3{0, 0, 0}}, // clamp after last keyframe
	}

	for _, tt := range tests {
		pose := NewPose(m)
		clip.Sample(tt.time, pose)
		if got := pose[0].Translation; !vecNear(got, tt.want) {
			t.Errorf("Sample(t=%.2f): expected %v, got %v", tt.time, tt.want, got)
		}
	}
}

func TestSampleStepHoldsPreviousKeyframe(t *testing.T) {
	m := twoNodeModel()
	clip := Clip{
		Name:     "step",
		Duration: 2,
		Channels: []Channel{{
			Node:  0,
			Path:  PathTranslation,
			Step:  true,
			Times: []float32{0, 1, 2},
			Vec:   []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}},
		}},
	}

	pose := NewPose(m)
	clip.Sample(0.99, pose)
	if got := pose[0].Translation; !vecNear(got, mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Step channel at t=0.99: expected hold at first keyframe, got %v", got)
	}
	clip.Sample(1.5, pose)
	if got := pose[0].Translation; !vecNear(got, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Step channel at t=1.5: expected hold at second keyframe, got %v", got)
	}
}

func TestSampleRotationSlerp(t *testing.T) {
	m := twoNodeModel()
	quarter := mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 0, 1})
	clip := Clip{
		Name:     "turn",
		Duration: 1,
		Channels: []Channel{{
			Node:  0,
			Path:  PathRotation,
			Times: []float32{0, 1},
			Quat:  []mgl32.Quat{mgl32.QuatIdent(), quarter},
		}},
	}

	pose := NewPose(m)
	clip.Sample(0.5, pose)

	// Halfway through a 90 degree turn, X should map to the 45 degree diagonal.
	got := pose[0].Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	want := mgl32.Vec3{float32(math.Cos(math.Pi / 4)), float32(math.Sin(math.Pi / 4)), 0}
	if !vecNear(got, want) {
		t.Errorf("Slerp midpoint: expected %v, got %v", want, got)
	}
}

func TestSampleIgnoresOutOfRangeNode(t *testing.T) {
	m := twoNodeModel()
	clip := Clip{
		Channels: []Channel{{
			Node:  99,
			Path:  PathTranslation,
			Times: []float32{0},
			Vec:   []mgl32.Vec3{{1, 1, 1}},
		}},
	}
	pose := NewPose(m)
	clip.Sample(0, pose) // must not panic
}

func TestGlobalMatricesComposeParentChild(t *testing.T) {
	m := twoNodeModel()
	pose := NewPose(m)
	pose[0].Translation = mgl32.Vec3{1, 0, 0}
	pose[1].Translation = mgl32.Vec3{0, 2, 0}

	mats := GlobalMatrices(m, pose, nil)
	if len(mats) != 2 {
		t.Fatalf("Expected 2 matrices, got %d", len(mats))
	}

	origin := mgl32.Vec4{0, 0, 0, 1}
	childPos := mats[1].Mul4x1(origin)
	want := mgl32.Vec4{1, 2, 0, 1}
	if childPos.Sub(want).Len() > sampleEpsilon {
		t.Errorf("Child world position: expected %v, got %v", want, childPos)
	}
}

func TestGlobalMatricesReusesBuffer(t *testing.T) {
	m := twoNodeModel()
	pose := NewPose(m)
	buf := make([]mgl32.Mat4, 2)
	out := GlobalMatrices(m, pose, buf)
	if &out[0] != &buf[0] {
		t.Error("Expected output to reuse the provided buffer")
	}
}
