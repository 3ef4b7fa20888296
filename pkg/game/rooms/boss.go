package rooms

import (
	"math"
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// BossSides is the order of a boss room's nubs and door anchors
var BossSides = [4]world.Direction{world.West, world.North, world.East, world.South}

// BossRoom is a circular arena inside a bounding box. Cells of the box outside
// the circle are boss wall. Four nubs at the cardinal midpoints are always
// floor and their outermost row or column serves as a door anchor.
type BossRoom struct {
	bounds world.Rect
	center world.Point
	radius float64
	nubs   [4]world.Rect
}

// NewBossRoom creates a boss room with a fixed center and radius. Nub and box
// sizes follow the minimum room size in cfg.
func NewBossRoom(center world.Point, radius float64, cfg config.Config) *BossRoom {
	b := &BossRoom{}
	b.layout(center, radius, cfg)
	return b
}

// Kind returns KindBoss
func (b *BossRoom) Kind() Kind {
	return KindBoss
}

// Generate draws a floored radius in [min, max) and a center that keeps the
// bounding box inside the world
func (b *BossRoom) Generate(rng *rand.Rand, cfg config.Config) {
	radius := math.Floor(cfg.MinBossRadius + rng.Float64()*(cfg.MaxBossRadius-cfg.MinBossRadius))

	width, height := cfg.BossSize(radius)
	halfW, halfH := width/2, height/2

	centerY := halfH + rng.Intn(cfg.WorldHeight-2*halfH)
	centerX := halfW + rng.Intn(cfg.WorldWidth-2*halfW)

	b.layout(world.Point{X: centerX, Y: centerY}, radius, cfg)
}

func (b *BossRoom) layout(center world.Point, radius float64, cfg config.Config) {
	width, height := cfg.BossSize(radius)
	halfW, halfH := width/2, height/2
	minW, minH := cfg.MinRoomWidth, cfg.MinRoomHeight
	// half of the nub span, rounded up
	spanW, spanH := (minW+1)/2, (minH+1)/2

	b.center = center
	b.radius = radius
	b.bounds = world.Rect{
		Left:   center.X - halfW,
		Top:    center.Y - halfH,
		Right:  center.X + halfW,
		Bottom: center.Y + halfH,
	}

	// The box is one row/column shorter on the far sides, so the near nubs
	// are one cell deeper to reach the same ring of the circle.
	top := world.Rect{
		Left:   center.X - spanW,
		Top:    b.bounds.Top,
		Right:  center.X + spanW + 1,
		Bottom: b.bounds.Top + minH + 1,
	}
	left := world.Rect{
		Left:   b.bounds.Left,
		Top:    center.Y - spanH,
		Right:  b.bounds.Left + minW + 1,
		Bottom: center.Y + spanH + 1,
	}
	bottom := world.Rect{
		Left:   top.Left,
		Top:    b.bounds.Bottom - minH,
		Right:  top.Right,
		Bottom: b.bounds.Bottom,
	}
	right := world.Rect{
		Left:   b.bounds.Right - minW,
		Top:    left.Top,
		Right:  b.bounds.Right,
		Bottom: left.Bottom,
	}

	b.nubs = [4]world.Rect{left, top, right, bottom}
}

// Populate writes floor inside the circle, boss wall in the rest of the box,
// then opens the nubs
func (b *BossRoom) Populate(grid *world.Grid) {
	for row := b.bounds.Top; row < b.bounds.Bottom; row++ {
		for col := b.bounds.Left; col < b.bounds.Right; col++ {
			if b.InCircle(world.Point{X: col, Y: row}) {
				grid.Set(row, col, world.TileRoomFloor)
			} else {
				grid.Set(row, col, world.TileBossWall)
			}
		}
	}

	for _, nub := range b.nubs {
		grid.Fill(nub, world.TileRoomFloor)
	}
}

// PopulateDecor does nothing; boss rooms hold no chests
func (b *BossRoom) PopulateDecor(grid *world.Grid) {}

// Intersects reports a collision if any nub touches c or any corner of c lies
// within radius+1 of the center.
//
// This samples corners only: a rectangle whose edge cuts through the circle
// with all four corners outside it is not detected.
func (b *BossRoom) Intersects(c world.Rect) bool {
	for _, nub := range b.nubs {
		if nub.Touches(c) {
			return true
		}
	}
	for _, p := range c.Corners() {
		if p.Dist(b.center) <= b.radius+1 {
			return true
		}
	}
	return false
}

// InCircle reports whether a cell is arena floor
func (b *BossRoom) InCircle(p world.Point) bool {
	return p.Dist(b.center) <= b.radius
}

// Bounds returns the bounding box
func (b *BossRoom) Bounds() world.Rect {
	return b.bounds
}

// DoorAnchors returns the outer sliver of each nub in BossSides order
func (b *BossRoom) DoorAnchors() []world.Rect {
	anchors := make([]world.Rect, len(b.nubs))
	for i, side := range BossSides {
		anchors[i] = side.Sliver(b.nubs[i])
	}
	return anchors
}

// Chests returns nil
func (b *BossRoom) Chests() []world.Point {
	return nil
}

// Center returns the arena center
func (b *BossRoom) Center() world.Point {
	return b.center
}

// Radius returns the arena radius
func (b *BossRoom) Radius() float64 {
	return b.radius
}

// Nubs returns the connector boxes in BossSides order
func (b *BossRoom) Nubs() [4]world.Rect {
	return b.nubs
}
