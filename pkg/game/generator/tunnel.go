package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/rooms"
)

// TunnelKind describes how a tunnel was routed
type TunnelKind int

// Tunnel kinds
const (
	TunnelHorizontal TunnelKind = iota
	TunnelVertical
	TunnelDogleg
)

// String returns the name of the kind
func (k TunnelKind) String() string {
	switch k {
	case TunnelHorizontal:
		return "horizontal"
	case TunnelVertical:
		return "vertical"
	case TunnelDogleg:
		return "dogleg"
	default:
		return "unknown"
	}
}

// Segment is a straight one-tile-wide run of tunnel
type Segment struct {
	Vertical bool

	// Pos is the row of a horizontal segment or the column of a vertical one
	Pos int

	// Start and End bound the run along its axis, End exclusive
	Start, End int

	// First and Last are the tiles written at the two ends
	First, Last world.Tile
}

// Len returns the number of cells in the segment
func (s Segment) Len() int {
	return max(0, s.End-s.Start)
}

// Bounds returns the cells covered by the segment
func (s Segment) Bounds() world.Rect {
	if s.Vertical {
		return world.Rect{Left: s.Pos, Top: s.Start, Right: s.Pos + 1, Bottom: s.End}
	}
	return world.Rect{Left: s.Start, Top: s.Pos, Right: s.End, Bottom: s.Pos + 1}
}

// Carve writes the segment into the grid
func (s Segment) Carve(grid *world.Grid) {
	if s.Vertical {
		grid.FillLineV(world.TileTunnel, s.Start, s.End, s.Pos, s.First, s.Last)
		return
	}
	grid.FillLineH(world.TileTunnel, s.Start, s.End, s.Pos, s.First, s.Last)
}

// String formats the segment for debug output
func (s Segment) String() string {
	if s.Vertical {
		return fmt.Sprintf("V x=%d y=%d-%d", s.Pos, s.Start, s.End)
	}
	return fmt.Sprintf("H y=%d x=%d-%d", s.Pos, s.Start, s.End)
}

// Tunnel is the carved route of one selected edge
type Tunnel struct {
	Edge     Edge
	Kind     TunnelKind
	Segments []Segment

	// Attempts is the number of routes tried; always 1 for straight tunnels
	Attempts int

	// Intersecting is set when the route still crosses a third room
	Intersecting bool
}

// Carver turns selected edges into tunnels
type Carver struct {
	grid    *world.Grid
	rooms   []*rooms.Room
	rng     *rand.Rand
	retries int
	paint   bool
}

// NewCarver creates a carver over the placed rooms. When cfg.Features.Paths is
// off tunnels are still routed but nothing is written to the grid.
func NewCarver(grid *world.Grid, rs []*rooms.Room, cfg config.Config, rng *rand.Rand) *Carver {
	return &Carver{
		grid:    grid,
		rooms:   rs,
		rng:     rng,
		retries: max(1, cfg.TunnelRetries),
		paint:   cfg.Features.Paths,
	}
}

// Carve routes and carves the tunnel for e
func (c *Carver) Carve(e Edge) Tunnel {
	t := c.route(e)
	if c.paint {
		for _, s := range t.Segments {
			s.Carve(c.grid)
		}
	}
	return t
}

func (c *Carver) route(e Edge) Tunnel {
	a, b := e.RectA, e.RectB

	if top, bottom := a.RowOverlap(b); top < bottom {
		startX, endX := a.Right, b.Left
		if a.Left > b.Left {
			startX, endX = b.Right, a.Left
		}
		row := top + c.rng.Intn(bottom-top)
		return Tunnel{
			Edge:     e,
			Kind:     TunnelHorizontal,
			Segments: []Segment{{Pos: row, Start: startX, End: endX, First: world.TileDoor, Last: world.TileDoor}},
			Attempts: 1,
		}
	}

	if left, right := a.ColOverlap(b); left < right {
		startY, endY := a.Bottom, b.Top
		if a.Top > b.Top {
			startY, endY = b.Bottom, a.Top
		}
		col := left + c.rng.Intn(right-left)
		return Tunnel{
			Edge:     e,
			Kind:     TunnelVertical,
			Segments: []Segment{{Vertical: true, Pos: col, Start: startY, End: endY, First: world.TileDoor, Last: world.TileDoor}},
			Attempts: 1,
		}
	}

	return c.dogleg(e)
}

// dogleg routes an L-shaped tunnel. Every attempt samples fresh points in
// both anchors; after a collision the leg order flips. The last attempt is
// kept even if it collides.
func (c *Carver) dogleg(e Edge) Tunnel {
	from, to := e.RectA, e.RectB

	insetX, insetY := 1, 1
	if from.Left == to.Right || from.Right == to.Left {
		insetX = 0
	}
	if from.Top == to.Bottom || from.Bottom == to.Top {
		insetY = 0
	}

	endpoints := mapset.New[int]()
	endpoints.Put(e.A)
	endpoints.Put(e.B)

	verticalFirst := c.rng.Intn(2) == 1
	t := Tunnel{Edge: e, Kind: TunnelDogleg}

	for t.Attempts < c.retries {
		t.Attempts++

		startY := sampleSpan(c.rng, from.Top, from.Bottom, insetY)
		startX := sampleSpan(c.rng, from.Left, from.Right, insetX)
		endY := sampleSpan(c.rng, to.Top, to.Bottom, insetY)
		endX := sampleSpan(c.rng, to.Left, to.Right, insetX)

		t.Segments = doglegSegments(from, to, world.Point{X: startX, Y: startY}, world.Point{X: endX, Y: endY}, verticalFirst)
		t.Intersecting = c.crossesRoom(t.Segments, &endpoints)
		if !t.Intersecting {
			break
		}
		verticalFirst = !verticalFirst
	}

	return t
}

// doglegSegments builds the vertical and horizontal legs between two sampled
// points. The first leg leaves from's boundary, the second enters to's. The
// vertical leg is always listed first.
func doglegSegments(from, to world.Rect, start, end world.Point, verticalFirst bool) []Segment {
	var v, h Segment
	v.Vertical = true

	if verticalFirst {
		v.Pos = start.X
		v.Start = min(from.Bottom, end.Y)
		v.End = max(from.Top, end.Y)
		v.First = doorIf(v.Start == from.Bottom)
		v.Last = doorIf(v.End == from.Top)

		h.Pos = end.Y
		h.Start = min(to.Right, start.X)
		h.End = max(to.Left, start.X+1)
		h.First = doorIf(h.Start == to.Right)
		h.Last = doorIf(h.End == to.Left)
	} else {
		h.Pos = start.Y
		h.Start = min(from.Right, end.X)
		h.End = max(from.Left, end.X)
		h.First = doorIf(h.Start == from.Right)
		h.Last = doorIf(h.End == from.Left)

		v.Pos = end.X
		v.Start = min(to.Bottom, start.Y)
		v.End = max(to.Top, start.Y+1)
		v.First = doorIf(v.Start == to.Bottom)
		v.Last = doorIf(v.End == to.Top)
	}

	// Flush anchors leave the first leg empty and put the elbow against from.
	if verticalFirst && v.Len() == 0 {
		markElbow(&h, start.X)
	} else if !verticalFirst && h.Len() == 0 {
		markElbow(&v, start.Y)
	}

	return []Segment{v, h}
}

func markElbow(s *Segment, at int) {
	if s.Start == at {
		s.First = world.TileDoor
	} else {
		s.Last = world.TileDoor
	}
}

func doorIf(onBoundary bool) world.Tile {
	if onBoundary {
		return world.TileDoor
	}
	return world.TileTunnel
}

// sampleSpan draws a coordinate in [lo+inset, hi-inset), dropping the inset
// when the span is too thin for it
func sampleSpan(rng *rand.Rand, lo, hi, inset int) int {
	if hi-lo <= 2*inset {
		inset = 0
	}
	return lo + inset + rng.Intn(hi-lo-2*inset)
}

func (c *Carver) crossesRoom(segments []Segment, endpoints *mapset.Set[int]) bool {
	for _, r := range c.rooms {
		if endpoints.Has(r.ID) {
			continue
		}
		bounds := r.Bounds()
		for _, s := range segments {
			if s.Len() > 0 && s.Bounds().Overlaps(bounds) {
				return true
			}
		}
	}
	return false
}
