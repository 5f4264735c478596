// embed.go - resource embedding declarations.
// This file must live at the project root (next to assets/ and data/)
// because //go:embed can only embed files under the declaring package's
// directory.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/viewer.yaml
var dataFS embed.FS
