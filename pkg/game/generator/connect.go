package generator

import (
	"math/rand"

	"dungeongen/pkg/engine/graph"
	"dungeongen/pkg/game/rooms"
)

// Forest is the set of edges selected by Connect
type Forest struct {
	Edges        []Edge
	Degrees      []int
	Disconnected []int
}

// Connect runs Kruskal over sorted edges. An edge is taken only when both
// rooms are below their door cap and not yet joined, so the result is a
// spanning forest that never exceeds any cap.
func Connect(rs []*rooms.Room, edges []Edge, notify Listener) Forest {
	f := Forest{Degrees: make([]int, len(rs))}
	sets := graph.NewDisjointSet(len(rs))

	for _, e := range edges {
		if len(f.Edges) == len(rs)-1 {
			break
		}
		if f.Degrees[e.A] >= rs[e.A].MaxDoors || f.Degrees[e.B] >= rs[e.B].MaxDoors {
			continue
		}
		if !sets.Union(e.A, e.B) {
			continue
		}

		f.Degrees[e.A]++
		f.Degrees[e.B]++
		f.Edges = append(f.Edges, e)

		selected := e
		notify.emit(Event{Kind: EventEdgeSelected, Edge: &selected})
	}

	if len(rs) > 1 {
		for id, d := range f.Degrees {
			if d == 0 {
				f.Disconnected = append(f.Disconnected, id)
				notify.emit(Event{Kind: EventRoomDisconnected, Room: rs[id]})
			}
		}
	}

	return f
}

// Leaves returns the rooms with exactly one selected edge, in id order
func (f Forest) Leaves() []int {
	var leaves []int
	for id, d := range f.Degrees {
		if d == 1 {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// ChooseEntry picks a leaf uniformly as the entrance. A lone room is its own
// entrance; otherwise -1 is returned when there are no leaves.
func ChooseEntry(f Forest, rng *rand.Rand) int {
	if len(f.Degrees) == 1 {
		return 0
	}
	leaves := f.Leaves()
	if len(leaves) == 0 {
		return -1
	}
	return leaves[rng.Intn(len(leaves))]
}
