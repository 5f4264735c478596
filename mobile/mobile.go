//go:build mobile

// Package mobile provides the ebitenmobile binding entry point.
//
// It is used to build the Android (.aar) and iOS (.xcframework)
// packages; the ebitenmobile tool calls init() automatically.
//
// This file only compiles with -tags mobile:
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.avatarview -o build/android/avatarview.aar -v ./mobile
//
//	# iOS (macOS only)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/AvatarView.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/avatarview/pkg/app"
	"github.com/decker502/avatarview/pkg/embedded"
)

func init() {
	// assetsFS and dataFS are declared in embed.go.
	embedded.Init(assetsFS, dataFS)

	viewerApp, err := app.NewApp(app.Config{
		Verbose: true, // verbose logging for on-device debugging
	})
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	mobile.SetGame(viewerApp)
}

// Dummy is an empty exported function so ebitenmobile recognizes the
// package.
func Dummy() {}
