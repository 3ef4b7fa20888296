package generator

import (
	"fmt"
	"sort"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/rooms"
)

// Edge is a candidate connection between door anchors of two rooms
type Edge struct {
	A, B             int // room ids, A < B
	AnchorA, AnchorB int // indices into each room's DoorAnchors
	RectA, RectB     world.Rect
	Weight           float64
}

// String formats the edge for debug output
func (e Edge) String() string {
	return fmt.Sprintf("%d[%d] - %d[%d] (%.2f)", e.A, e.AnchorA, e.B, e.AnchorB, e.Weight)
}

type anchorRef struct {
	room  int
	index int
	rect  world.Rect
}

// BuildEdges returns an edge for every pair of anchors on different rooms,
// sorted by the distance between anchor centers. Ties keep enumeration order.
func BuildEdges(rs []*rooms.Room) []Edge {
	var anchors []anchorRef
	for _, r := range rs {
		for i, a := range r.DoorAnchors() {
			anchors = append(anchors, anchorRef{room: r.ID, index: i, rect: a})
		}
	}

	edges := make([]Edge, 0, len(anchors)*(len(anchors)-1)/2)
	for i := 0; i < len(anchors); i++ {
		for j := i + 1; j < len(anchors); j++ {
			a, b := anchors[i], anchors[j]
			if a.room == b.room {
				continue
			}
			edges = append(edges, Edge{
				A:       a.room,
				B:       b.room,
				AnchorA: a.index,
				AnchorB: b.index,
				RectA:   a.rect,
				RectB:   b.rect,
				Weight:  a.rect.CenterDist(b.rect),
			})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges
}
