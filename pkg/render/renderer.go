package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/avatarview/internal/model"
)

// Renderer draws a posed model as a wireframe. It keeps per-frame
// scratch buffers so steady-state drawing does not allocate.
type Renderer struct {
	camera      Camera
	lineColor   color.Color
	strokeWidth float32

	globals []mgl32.Mat4
}

// NewRenderer creates a wireframe renderer with the given camera and
// line color.
func NewRenderer(camera Camera, lineColor color.Color) *Renderer {
	return &Renderer{
		camera:      camera,
		lineColor:   lineColor,
		strokeWidth: 1.5,
	}
}

// DrawModel renders the model in the given pose. yaw rotates the whole
// model around the vertical axis and offsetY lifts it, both applied at
// the root so the idle motion moves the avatar as one body.
func (r *Renderer) DrawModel(screen *ebiten.Image, m *model.Model, pose []model.Transform, yaw, offsetY float64) {
	if m == nil || len(pose) != len(m.Nodes) {
		return
	}
	bounds := screen.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	world := mgl32.Translate3D(0, float32(offsetY), 0).
		Mul4(mgl32.HomogRotate3DY(float32(yaw)))
	vp := r.camera.ViewProjection(width, height).Mul4(world)

	r.globals = model.GlobalMatrices(m, pose, r.globals)

	for i := range m.Nodes {
		meshIndex := m.Nodes[i].Mesh
		if meshIndex < 0 {
			continue
		}
		mvp := vp.Mul4(r.globals[i])
		r.drawMesh(screen, &m.Meshes[meshIndex], mvp, width, height)
	}
}

func (r *Renderer) drawMesh(screen *ebiten.Image, mesh *model.Mesh, mvp mgl32.Mat4, width, height int) {
	for _, edge := range mesh.Edges {
		a, b := mesh.Positions[edge[0]], mesh.Positions[edge[1]]
		ax, ay, okA := Project(mvp, a, width, height)
		bx, by, okB := Project(mvp, b, width, height)
		if !okA || !okB {
			continue
		}
		vector.StrokeLine(screen, ax, ay, bx, by, r.strokeWidth, r.lineColor, true)
	}
}
