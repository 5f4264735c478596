package scenes

// Status is the single user-facing state of the avatar screen. It is
// derived, never stored: the scene computes it from its flags on every
// frame so the flags can change in any order without leaving a stale
// label on screen.
type Status int

const (
	// StatusInitializing is shown before the render surface handshake
	// completes.
	StatusInitializing Status = iota
	// StatusLoadingModel is shown while the surface is ready but the
	// avatar asset has not arrived.
	StatusLoadingModel
	// StatusReady is shown when the avatar is on screen.
	StatusReady
	// StatusError is shown after any failure; it is terminal.
	StatusError
)

// StatusOf derives the displayed status. An error takes precedence over
// everything, then surface initialization, then model loading.
func StatusOf(bridgeReady, loaded bool, loadErr error) Status {
	switch {
	case loadErr != nil:
		return StatusError
	case !bridgeReady:
		return StatusInitializing
	case !loaded:
		return StatusLoadingModel
	default:
		return StatusReady
	}
}

// Label returns the badge text for the status.
func (s Status) Label() string {
	switch s {
	case StatusInitializing:
		return "Initializing..."
	case StatusLoadingModel:
		return "Loading model..."
	case StatusReady:
		return "Ready"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the loading indicators should stop
// animating.
func (s Status) Terminal() bool {
	return s == StatusReady || s == StatusError
}
