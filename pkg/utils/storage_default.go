//go:build !android

package utils

// EnsureStorageDir makes sure the settings storage directory exists.
// On non-Android platforms gdata creates its own directory, so this is
// a no-op.
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath returns the settings storage path. Non-Android
// platforms return "" and let gdata pick its default location.
func GetStoragePath() string {
	return ""
}
