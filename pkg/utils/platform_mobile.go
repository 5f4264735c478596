//go:build mobile

package utils

// IsMobile reports whether the viewer is running on a mobile device.
// Mobile builds always return true.
func IsMobile() bool {
	return true
}
