// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based generator.
package world

// Tile is the symbolic content of a single grid cell.
type Tile uint8

// Tile constants
const (
	TileSolid Tile = iota
	TileRoomFloor
	TileTunnel
	TileDoor
	TileBossWall
	TileChest

	tileCount
)

// DefaultSymbols is the symbol table used by exporters and renderers
var DefaultSymbols = [tileCount]rune{
	TileSolid:     '#',
	TileRoomFloor: '`',
	TileTunnel:    ' ',
	TileDoor:      'O',
	TileBossWall:  '@',
	TileChest:     '$',
}

// AllTiles returns every tile value for iteration
func AllTiles() []Tile {
	return []Tile{TileSolid, TileRoomFloor, TileTunnel, TileDoor, TileBossWall, TileChest}
}

// IsValid returns true if the tile is a known value
func (t Tile) IsValid() bool {
	return t < tileCount
}

// Symbol returns the default display rune for the tile
func (t Tile) Symbol() rune {
	if !t.IsValid() {
		return '?'
	}
	return DefaultSymbols[t]
}

// IsPassable returns true for tiles an agent could walk on
func (t Tile) IsPassable() bool {
	switch t {
	case TileRoomFloor, TileTunnel, TileDoor, TileChest:
		return true
	default:
		return false
	}
}

// String returns the name of the tile
func (t Tile) String() string {
	switch t {
	case TileSolid:
		return "Solid"
	case TileRoomFloor:
		return "RoomFloor"
	case TileTunnel:
		return "Tunnel"
	case TileDoor:
		return "Door"
	case TileBossWall:
		return "BossWall"
	case TileChest:
		return "Chest"
	default:
		return "Unknown"
	}
}
