//go:build !mobile

package utils

import "os"

// IsMobile reports whether the viewer is running on a mobile device.
// Desktop builds return false. Setting AVATARVIEW_MOBILE_EMULATE=1
// forces mobile behavior for local debugging.
func IsMobile() bool {
	return os.Getenv("AVATARVIEW_MOBILE_EMULATE") == "1"
}
