package scenes

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/decker502/avatarview/internal/model"
	"github.com/decker502/avatarview/pkg/avatar"
	"github.com/decker502/avatarview/pkg/config"
	"github.com/decker502/avatarview/pkg/game"
)

type fakeSource struct {
	state avatar.LoadState
	model *model.Model
	err   error
}

func (f *fakeSource) Snapshot() (avatar.LoadState, *model.Model, error) {
	return f.state, f.model, f.err
}

func testAvatarModel() *model.Model {
	return &model.Model{
		Name: "Avatar",
		Nodes: []model.Node{
			{Name: "root", Parent: -1, Mesh: 0, Rest: model.IdentityTransform()},
		},
		Roots: []int{0},
		Meshes: []model.Mesh{{
			Name:      "body",
			Positions: []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}},
			Edges:     [][2]uint32{{0, 1}},
		}},
		Clips: []model.Clip{{
			Name:     "idle",
			Duration: 1,
			Channels: []model.Channel{{
				Node:  0,
				Path:  model.PathTranslation,
				Times: []float32{0, 1},
				Vec:   []mgl32.Vec3{{0, 0, 0}, {0, 1, 0}},
			}},
		}},
	}
}

// newTestScene builds a scene on a quiet logger with in-memory settings
// and guarantees Dispose runs, so the process log writer is always
// restored.
func newTestScene(t *testing.T, source avatar.Source) *AvatarScene {
	t.Helper()
	prev := log.Writer()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(prev) })

	rm := game.NewResourceManager()
	sm, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager failed: %v", err)
	}
	scene := NewAvatarScene(rm, sm, source, config.DefaultViewerConfig())
	t.Cleanup(scene.Dispose)
	return scene
}

// advance runs n update ticks of dt seconds.
func advance(scene *AvatarScene, n int, dt float64) {
	for i := 0; i < n; i++ {
		scene.Update(dt)
	}
}

func TestSceneStartsInitializing(t *testing.T) {
	scene := newTestScene(t, &fakeSource{state: avatar.StateLoading})
	if got := scene.Status(); got != StatusInitializing {
		t.Errorf("Fresh scene status = %v, want Initializing", got)
	}
}

func TestSceneBridgeReadyAfterOneSecond(t *testing.T) {
	scene := newTestScene(t, &fakeSource{state: avatar.StateLoading})

	advance(scene, 3, 0.25) // 0.75s
	if got := scene.Status(); got != StatusInitializing {
		t.Errorf("Status at 0.75s = %v, want Initializing", got)
	}

	advance(scene, 1, 0.25) // 1.0s
	if got := scene.Status(); got != StatusLoadingModel {
		t.Errorf("Status at 1.0s = %v, want LoadingModel", got)
	}
}

func TestSceneModelBeforeSurfaceStaysInitializing(t *testing.T) {
	// The asset can arrive before the surface handshake; the screen must
	// keep showing Initializing until the handshake completes.
	scene := newTestScene(t, &fakeSource{state: avatar.StateLoaded, model: testAvatarModel()})

	advance(scene, 2, 0.25) // 0.5s
	if got := scene.Status(); got != StatusInitializing {
		t.Errorf("Status at 0.5s = %v, want Initializing", got)
	}

	advance(scene, 3, 0.25) // 1.25s: handshake done, presenter adopted
	if got := scene.Status(); got != StatusReady {
		t.Errorf("Status at 1.25s = %v, want Ready", got)
	}
}

func TestSceneSlowLoadShowsLoadingModel(t *testing.T) {
	src := &fakeSource{state: avatar.StateLoading}
	scene := newTestScene(t, src)

	advance(scene, 8, 0.25) // 2.0s, asset still in flight
	if got := scene.Status(); got != StatusLoadingModel {
		t.Errorf("Status during slow load = %v, want LoadingModel", got)
	}

	src.state = avatar.StateLoaded
	src.model = testAvatarModel()
	advance(scene, 1, 0.25)
	if got := scene.Status(); got != StatusReady {
		t.Errorf("Status after late load = %v, want Ready", got)
	}
}

func TestSceneLoadFailureShowsError(t *testing.T) {
	scene := newTestScene(t, &fakeSource{state: avatar.StateFailed, err: errors.New("decode failed")})

	advance(scene, 5, 0.25)
	if got := scene.Status(); got != StatusError {
		t.Errorf("Status after failure = %v, want Error", got)
	}
}

func TestSceneErrorIsTerminal(t *testing.T) {
	src := &fakeSource{state: avatar.StateFailed, err: errors.New("decode failed")}
	scene := newTestScene(t, src)
	advance(scene, 5, 0.25)

	// A late model must not resurrect the screen.
	src.state = avatar.StateLoaded
	src.err = nil
	src.model = testAvatarModel()
	advance(scene, 5, 0.25)

	if got := scene.Status(); got != StatusError {
		t.Errorf("Status after late recovery = %v, want Error (terminal)", got)
	}
}

func TestSceneIndicatorClockFreezesWhenTerminal(t *testing.T) {
	scene := newTestScene(t, &fakeSource{state: avatar.StateLoaded, model: testAvatarModel()})
	advance(scene, 8, 0.25) // well past Ready

	frozen := scene.animTime
	advance(scene, 4, 0.25)
	if scene.animTime != frozen {
		t.Errorf("Indicator clock advanced after terminal status: %v -> %v", frozen, scene.animTime)
	}
}

func TestSceneDisposeStopsPendingWork(t *testing.T) {
	scene := newTestScene(t, &fakeSource{state: avatar.StateLoading})
	scene.Dispose()

	advance(scene, 8, 0.25)
	if scene.bridgeReady {
		t.Error("Disposed scene must not complete the surface handshake")
	}
	if got := scene.Status(); got != StatusInitializing {
		t.Errorf("Disposed scene status = %v, want Initializing", got)
	}

	// Double dispose is a no-op.
	scene.Dispose()
}

func TestSceneDisposeRestoresLogWriter(t *testing.T) {
	prev := log.Writer()
	defer log.SetOutput(prev)
	log.SetOutput(io.Discard)

	rm := game.NewResourceManager()
	sm, _ := game.NewSettingsManager(nil)
	scene := NewAvatarScene(rm, sm, &fakeSource{state: avatar.StateLoading}, config.DefaultViewerConfig())

	if log.Writer() == io.Discard {
		t.Fatal("Expected the log filter to be installed while mounted")
	}
	scene.Dispose()
	if log.Writer() != io.Discard {
		t.Error("Expected Dispose to restore the previous log writer")
	}
}
