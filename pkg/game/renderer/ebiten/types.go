// Package ebiten provides an Ebiten-based window for browsing generated
// dungeons seed by seed.
package ebiten

import (
	"sync"

	"dungeongen/pkg/game/generator"
)

// Viewer shows one dungeon at a time and regenerates on key presses
type Viewer struct {
	gen generator.DungeonGenerator

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size in pixels; zero means fit to the window
	tileSize int

	dungeon      *generator.Dungeon
	seed         int64
	message      string
	showOverlay  bool
	dungeonMutex sync.RWMutex

	windowOpenedLogged bool
}
