package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/decker502/avatarview/pkg/config"
)

func testCamera() Camera {
	return NewCamera(config.CameraConfig{
		Eye:    [3]float64{0, 0, 3},
		Center: [3]float64{0, 0, 0},
		FOV:    45,
	})
}

func TestProjectLookAtTargetHitsScreenCenter(t *testing.T) {
	cam := testCamera()
	mvp := cam.ViewProjection(480, 800)

	x, y, ok := Project(mvp, mgl32.Vec3{0, 0, 0}, 480, 800)
	if !ok {
		t.Fatal("Look-at target must be projectable")
	}
	if math.Abs(float64(x)-240) > 0.5 || math.Abs(float64(y)-400) > 0.5 {
		t.Errorf("Look-at target projected to (%v, %v), want screen center (240, 400)", x, y)
	}
}

func TestProjectVerticalOrientation(t *testing.T) {
	cam := testCamera()
	mvp := cam.ViewProjection(480, 800)

	_, yUp, ok := Project(mvp, mgl32.Vec3{0, 0.5, 0}, 480, 800)
	if !ok {
		t.Fatal("Point above center must be projectable")
	}
	if yUp >= 400 {
		t.Errorf("World +Y must map upward on screen, got y=%v", yUp)
	}

	_, yDown, _ := Project(mvp, mgl32.Vec3{0, -0.5, 0}, 480, 800)
	if yDown <= 400 {
		t.Errorf("World -Y must map downward on screen, got y=%v", yDown)
	}
}

func TestProjectRejectsPointsBehindCamera(t *testing.T) {
	cam := testCamera()
	mvp := cam.ViewProjection(480, 800)

	if _, _, ok := Project(mvp, mgl32.Vec3{0, 0, 10}, 480, 800); ok {
		t.Error("Point behind the camera must not project")
	}
}

func TestProjectDepthInvariance(t *testing.T) {
	cam := testCamera()
	mvp := cam.ViewProjection(480, 800)

	// A point on the view axis projects to the center at any depth in
	// front of the camera.
	for _, z := range []float32{2, 0, -5} {
		x, y, ok := Project(mvp, mgl32.Vec3{0, 0, z}, 480, 800)
		if !ok {
			t.Fatalf("Point at z=%v must be projectable", z)
		}
		if math.Abs(float64(x)-240) > 0.5 || math.Abs(float64(y)-400) > 0.5 {
			t.Errorf("On-axis point at z=%v projected to (%v, %v)", z, x, y)
		}
	}
}
