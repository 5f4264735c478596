//go:build !mobile

// stub.go - placeholder for non-mobile builds.
//
// The real mobile entry point lives in mobile.go and embed.go, which
// only compile with -tags mobile.
package mobile

// Dummy is an empty exported function so the package can be referenced
// in non-mobile builds too.
func Dummy() {}
