// Package avatar hosts the 3D side of the viewer: the asynchronous
// asset slot, animation clip playback, procedural idle motion, and the
// presenter that bridges asset availability into the screen's
// load-state contract.
package avatar

import (
	"sync"

	"github.com/decker502/avatarview/internal/model"
)

// LoadState is the lifecycle of the avatar asset request. The render
// loop never blocks on the asset; it observes the state on every pass.
type LoadState int

const (
	// StateNotRequested means Start has not been called yet
	StateNotRequested LoadState = iota
	// StateLoading means the load is in flight
	StateLoading
	// StateLoaded means the model is available
	StateLoaded
	// StateFailed means the load ended in an error
	StateFailed
)

// String returns a human-readable state name for logs.
func (s LoadState) String() string {
	switch s {
	case StateNotRequested:
		return "not-requested"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source is anything that can answer "is the avatar available right
// now". The presenter polls a Source once per update.
type Source interface {
	// Snapshot returns the current state without blocking. The model is
	// non-nil exactly when the state is StateLoaded; the error is
	// non-nil exactly when the state is StateFailed.
	Snapshot() (LoadState, *model.Model, error)
}

// Loader is the process-scope asset slot. Start runs the load function
// on its own goroutine exactly once; every later Start call is ignored,
// so the steady-state render path never re-issues the request. Snapshot
// is safe to call from the game loop at any time.
type Loader struct {
	mu    sync.Mutex
	state LoadState
	model *model.Model
	err   error
}

// NewLoader creates a loader in the NotRequested state.
func NewLoader() *Loader {
	return &Loader{state: StateNotRequested}
}

// Start begins loading in the background. Only the first call has any
// effect.
func (l *Loader) Start(load func() (*model.Model, error)) {
	l.mu.Lock()
	if l.state != StateNotRequested {
		l.mu.Unlock()
		return
	}
	l.state = StateLoading
	l.mu.Unlock()

	go func() {
		m, err := load()
		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.state = StateFailed
			l.err = err
			return
		}
		l.state = StateLoaded
		l.model = m
	}()
}

// Snapshot implements Source.
func (l *Loader) Snapshot() (LoadState, *model.Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.model, l.err
}
