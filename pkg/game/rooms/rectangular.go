package rooms

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// RectangularRoom is a plain box room. Its only door anchor is its bounds.
type RectangularRoom struct {
	bounds world.Rect
	chests []world.Point
}

// NewRectangularRoom creates a rectangular room with fixed bounds
func NewRectangularRoom(bounds world.Rect) *RectangularRoom {
	return &RectangularRoom{bounds: bounds}
}

// AddChest places a chest at p, which must lie inside the bounds
func (r *RectangularRoom) AddChest(p world.Point) {
	r.chests = append(r.chests, p)
}

// Kind returns KindRectangular
func (r *RectangularRoom) Kind() Kind {
	return KindRectangular
}

// Generate draws a position, a size in [min, max) and fewer than MaxChests
// chests
func (r *RectangularRoom) Generate(rng *rand.Rand, cfg config.Config) {
	left := rng.Intn(cfg.WorldWidth - cfg.MaxRoomWidth)
	top := rng.Intn(cfg.WorldHeight - cfg.MaxRoomHeight)
	width := cfg.MinRoomWidth + rng.Intn(cfg.MaxRoomWidth-cfg.MinRoomWidth)
	height := cfg.MinRoomHeight + rng.Intn(cfg.MaxRoomHeight-cfg.MinRoomHeight)

	r.bounds = world.Rect{
		Left:   left,
		Top:    top,
		Right:  min(left+width, cfg.WorldWidth),
		Bottom: min(top+height, cfg.WorldHeight),
	}

	r.chests = r.chests[:0]
	if cfg.MaxChests <= 0 {
		return
	}
	count := rng.Intn(cfg.MaxChests)
	for i := 0; i < count; i++ {
		r.chests = append(r.chests, world.Point{
			X: r.bounds.Left + rng.Intn(r.bounds.Width()),
			Y: r.bounds.Top + rng.Intn(r.bounds.Height()),
		})
	}
}

// Populate fills the bounds with floor
func (r *RectangularRoom) Populate(grid *world.Grid) {
	grid.Fill(r.bounds, world.TileRoomFloor)
}

// PopulateDecor marks chest positions
func (r *RectangularRoom) PopulateDecor(grid *world.Grid) {
	for _, c := range r.chests {
		grid.Set(c.Y, c.X, world.TileChest)
	}
}

// Intersects is the plain rectangle test; touching edges count
func (r *RectangularRoom) Intersects(c world.Rect) bool {
	return r.bounds.Touches(c)
}

// Bounds returns the room rectangle
func (r *RectangularRoom) Bounds() world.Rect {
	return r.bounds
}

// DoorAnchors returns the bounds as the single anchor
func (r *RectangularRoom) DoorAnchors() []world.Rect {
	return []world.Rect{r.bounds}
}

// Chests returns the chest positions
func (r *RectangularRoom) Chests() []world.Point {
	return r.chests
}
