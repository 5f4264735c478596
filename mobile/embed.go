//go:build mobile

// embed.go - mobile resource embedding declarations.
//
// This file only compiles with -tags mobile. Before building, copy
// assets/ and data/ from the repo root into this directory:
//
//	cp -r assets data mobile/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/viewer.yaml
var dataFS embed.FS
