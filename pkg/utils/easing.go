package utils

import "math"

// Easing functions.
//
// Each function maps an animation progress value t in [0, 1] to an eased
// value in [0, 1]. Reference: https://easings.net/

// EaseLinear returns t unchanged (constant speed).
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad accelerates from rest: f(t) = t².
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad decelerates to rest: f(t) = 1 - (1-t)².
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutCubic starts slow, speeds up through the middle, and slows
// down again. Used by the loading pulse animation.
//
//	t < 0.5:  f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp interpolates linearly between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
