package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the viewer (e.g. the avatar screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable is an optional interface for scenes that own resources
// with teardown requirements: pending timers, an installed log filter,
// subscriptions. SceneManager calls Dispose exactly once when the scene
// stops being the active scene, and the application calls it on the
// final scene at shutdown.
type Disposable interface {
	// Dispose releases everything the scene acquired at mount time.
	// After Dispose, the scene's Update and Draw are never called again
	// and none of its scheduled callbacks may fire.
	Dispose()
}
