// Package rooms defines the room shapes a dungeon is built from and the
// weighted table that decides which shape each room gets.
package rooms

import (
	"fmt"
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// Kind tags a shape variant
type Kind int

// Shape kinds
const (
	KindRectangular Kind = iota
	KindBoss
)

// KindOf maps a config shape name to its kind. Unknown names map to
// KindRectangular; config validation rejects them before this point.
func KindOf(shape string) Kind {
	if shape == config.ShapeBoss {
		return KindBoss
	}
	return KindRectangular
}

// String returns the config shape name of the kind
func (k Kind) String() string {
	switch k {
	case KindBoss:
		return config.ShapeBoss
	default:
		return config.ShapeRectangular
	}
}

// Shape is the geometry of one room.
type Shape interface {
	Kind() Kind

	// Generate draws a new random geometry, replacing the previous one
	Generate(rng *rand.Rand, cfg config.Config)

	// Populate writes the floor pattern into the grid
	Populate(grid *world.Grid)

	// PopulateDecor writes decoration tiles (chests) into the grid
	PopulateDecor(grid *world.Grid)

	// Intersects reports whether a candidate rectangle collides with the shape
	Intersects(r world.Rect) bool

	Bounds() world.Rect

	// DoorAnchors are the rectangles tunnels may attach to, in a stable order
	DoorAnchors() []world.Rect

	Chests() []world.Point
}

// NewShape returns an empty shape of the given kind
func NewShape(k Kind) Shape {
	switch k {
	case KindBoss:
		return &BossRoom{}
	default:
		return &RectangularRoom{}
	}
}

// Room is a placed room: its index in the dungeon, the table entry it came
// from and its shape.
type Room struct {
	Shape

	ID       int
	Type     string
	MaxDoors int
}

// NewRoom creates a room with an empty shape for the given table entry
func NewRoom(id int, rt config.RoomType) *Room {
	return &Room{
		Shape:    NewShape(KindOf(rt.Shape)),
		ID:       id,
		Type:     rt.Shape,
		MaxDoors: rt.Doors(),
	}
}

// NewRoomWithShape wraps an already built shape, using the shape's default
// door cap
func NewRoomWithShape(id int, s Shape) *Room {
	return &Room{
		Shape:    s,
		ID:       id,
		Type:     s.Kind().String(),
		MaxDoors: config.DefaultMaxDoors(s.Kind().String()),
	}
}

// String returns a short description of the room
func (r *Room) String() string {
	return fmt.Sprintf("#%d %s %v", r.ID, r.Type, r.Bounds())
}

// Collides reports whether two shapes may not coexist: their bounds touch, or
// either shape's own intersection test reports the other's bounds.
func Collides(a, b Shape) bool {
	return a.Bounds().Touches(b.Bounds()) || a.Intersects(b.Bounds()) || b.Intersects(a.Bounds())
}
