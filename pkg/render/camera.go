// Package render projects the wireframe avatar onto the screen. The
// scene owns the UI chrome; this package only knows how to turn a model
// plus a pose into stroked line segments.
package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/decker502/avatarview/pkg/config"
)

// Camera is a fixed perspective camera. The viewer never moves it at
// runtime; framing comes from the viewer config.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3
	// FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32
}

// NewCamera builds a camera from the viewer configuration.
func NewCamera(cfg config.CameraConfig) Camera {
	return Camera{
		Eye:    mgl32.Vec3{float32(cfg.Eye[0]), float32(cfg.Eye[1]), float32(cfg.Eye[2])},
		Center: mgl32.Vec3{float32(cfg.Center[0]), float32(cfg.Center[1]), float32(cfg.Center[2])},
		Up:     mgl32.Vec3{0, 1, 0},
		FOV:    float32(cfg.FOV),
		Near:   0.1,
		Far:    100,
	}
}

// ViewProjection returns the combined view-projection matrix for a
// viewport of the given pixel size.
func (c Camera) ViewProjection(width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
	view := mgl32.LookAtV(c.Eye, c.Center, c.Up)
	return proj.Mul4(view)
}

// Project maps a world-space point through mvp into pixel coordinates
// for a width x height viewport. ok is false when the point is behind
// the camera.
func Project(mvp mgl32.Mat4, p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := mvp.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1})
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX + 1) * 0.5 * float32(width)
	y = (1 - ndcY) * 0.5 * float32(height)
	return x, y, true
}
