// Package embedded provides unified access to the embedded resources.
//
// Because the Go embed directive can only embed files under the
// declaring package's directory, the embed.FS variables are declared at
// the project root (embed.go) and handed to this package. Other
// packages read resources through the wrappers here.
//
// Init must be called before any resource is loaded.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    embed.FS
	dataFS      embed.FS
	initialized bool
)

// Init installs the embed.FS variables. It must run at the start of
// main(), before any resource load.
func Init(assets, data embed.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// normalize converts a resource path to the forward-slash form embed.FS
// expects and strips a leading "./".
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// Open opens a file from the embed.FS matching the path prefix.
// Paths must start with "assets/" or "data/".
func Open(path string) (fs.File, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS.Open(path)
	case strings.HasPrefix(path, "data/"):
		return dataFS.Open(path)
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// ReadFile reads a whole file from the embed.FS matching the path
// prefix. Paths must start with "assets/" or "data/".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	path = normalize(path)
	switch {
	case strings.HasPrefix(path, "assets/"):
		return fs.ReadFile(assetsFS, path)
	case strings.HasPrefix(path, "data/"):
		return fs.ReadFile(dataFS, path)
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Exists reports whether the file exists in the embedded filesystems.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob matches files in the embedded filesystems. The pattern must
// start with "assets/" or "data/".
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	pattern = normalize(pattern)
	switch {
	case strings.HasPrefix(pattern, "assets/"):
		return fs.Glob(assetsFS, pattern)
	case strings.HasPrefix(pattern, "data/"):
		return fs.Glob(dataFS, pattern)
	}
	return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", pattern)
}
