package avatar

import (
	"math"

	"github.com/decker502/avatarview/pkg/config"
)

// Idle motion is a pure function of elapsed time: the same t always
// yields the same pose regardless of frame rate or history.

// IdleOffset returns the vertical bob offset (model units) at t seconds
// since the presenter's clock started: sin(t * 0.5) * 0.1.
func IdleOffset(t float64) float64 {
	return math.Sin(t*config.IdleBobFrequency) * config.IdleBobAmplitude
}

// IdleYaw returns the yaw oscillation (radians) at t seconds since the
// presenter's clock started: sin(t * 0.3) * 0.2.
func IdleYaw(t float64) float64 {
	return math.Sin(t*config.IdleYawFrequency) * config.IdleYawAmplitude
}
