package ebiten

import "image/color"

// Overlay colors drawn on top of the tile map
var (
	colorHeaderBackground = color.RGBA{30, 30, 50, 220}
	colorRoomOutline      = color.RGBA{120, 130, 180, 255}
	colorAnchor           = color.RGBA{100, 255, 150, 255}
	colorEntry            = color.RGBA{0, 255, 0, 255}
	colorWarning          = color.RGBA{255, 100, 100, 255}
)

// Tile size constraints
const (
	minTileSize     = 2
	maxTileSize     = 32
	tileSizeStep    = 1
	headerHeight    = 36
	mapMargin       = 8
	defaultWindowW  = 1024
	defaultWindowH  = 900
	windowTitleBase = "Dungeon Generator"
)
