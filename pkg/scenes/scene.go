package scenes

import (
	"github.com/decker502/avatarview/pkg/game"
)

// Scene is a type alias for game.Scene. All scene implementations
// satisfy the game.Scene interface.
type Scene = game.Scene
