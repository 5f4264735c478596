package config

// Screen layout and timing constants.

const (
	// ViewerWindowWidth is the logical screen width. The logical size is
	// fixed; Ebitengine rescales it to the actual window or device
	// resolution, including after rotation.
	ViewerWindowWidth = 480

	// ViewerWindowHeight is the logical screen height
	ViewerWindowHeight = 800

	// BridgeReadyDelay is how long after mount the screen leaves the
	// Initializing state (seconds)
	BridgeReadyDelay = 1.0

	// ClipStaggerDelay is the delay between consecutive animation clip
	// starts once the model is loaded (seconds)
	ClipStaggerDelay = 0.1

	// SpinnerCycleDuration is one full revolution of the loading spinner
	// (seconds, linear)
	SpinnerCycleDuration = 2.0

	// PulseCycleDuration is one grow-and-shrink cycle of the loading
	// center dot (seconds, eased in/out)
	PulseCycleDuration = 2.0

	// SpinnerRadius is the loading spinner radius in logical pixels
	SpinnerRadius = 28.0

	// SpinnerStrokeWidth is the spinner arc line width
	SpinnerStrokeWidth = 4.0

	// PulseDotRadius is the center dot radius at full scale
	PulseDotRadius = 8.0

	// PulseMinScale is the center dot scale at the bottom of the cycle
	PulseMinScale = 0.4

	// StatusBadgeX is the status badge left margin
	StatusBadgeX = 16.0

	// StatusBadgeY is the status badge baseline from the top
	StatusBadgeY = 24.0

	// StatusDotRadius is the colored status indicator dot radius
	StatusDotRadius = 5.0

	// StatusFontSize is the status badge font size
	StatusFontSize = 16.0

	// ErrorFontSize is the error overlay font size
	ErrorFontSize = 18.0
)

// Idle motion constants. Vertical offset and yaw are pure functions of
// elapsed time: offset = sin(t * freq) * amplitude.

const (
	// IdleBobFrequency is the vertical bob angular frequency (rad/s)
	IdleBobFrequency = 0.5

	// IdleBobAmplitude is the vertical bob amplitude in model units
	IdleBobAmplitude = 0.1

	// IdleYawFrequency is the yaw oscillation angular frequency (rad/s)
	IdleYawFrequency = 0.3

	// IdleYawAmplitude is the yaw oscillation amplitude in radians
	IdleYawAmplitude = 0.2
)
