package renderer

import (
	"image/color"

	"dungeongen/pkg/engine/world"
)

// Tile colors for graphical renderers
var (
	ColorBackground = color.RGBA{15, 15, 26, 255}
	ColorSolid      = color.RGBA{40, 40, 56, 255}
	ColorRoomFloor  = color.RGBA{160, 160, 180, 255}
	ColorTunnel     = color.RGBA{100, 100, 120, 255}
	ColorDoor       = color.RGBA{255, 220, 0, 255}
	ColorBossWall   = color.RGBA{180, 60, 60, 255}
	ColorChest      = color.RGBA{255, 165, 0, 255}
	ColorUnknown    = color.RGBA{255, 0, 255, 255}
)

var tileColors = map[world.Tile]color.RGBA{
	world.TileSolid:     ColorSolid,
	world.TileRoomFloor: ColorRoomFloor,
	world.TileTunnel:    ColorTunnel,
	world.TileDoor:      ColorDoor,
	world.TileBossWall:  ColorBossWall,
	world.TileChest:     ColorChest,
}

// TileColor returns the fill color of a tile
func TileColor(t world.Tile) color.RGBA {
	if c, ok := tileColors[t]; ok {
		return c
	}
	return ColorUnknown
}
