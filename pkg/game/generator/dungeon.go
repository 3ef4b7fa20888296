package generator

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/rooms"
)

// Diagnostics collects the non-fatal outcomes of a run
type Diagnostics struct {
	// RequestedRooms is the configured room count
	RequestedRooms int `json:"requested_rooms"`

	// PlacementExhausted is set when a room could not be placed and the
	// room count was truncated
	PlacementExhausted bool `json:"placement_exhausted"`

	// CandidatesTried counts every generated candidate shape
	CandidatesTried int `json:"candidates_tried"`

	// FallbackSelections counts rooms that got rooms.FallbackType
	FallbackSelections int `json:"fallback_selections"`

	// DisconnectedRooms lists rooms without any selected edge
	DisconnectedRooms []int `json:"disconnected_rooms"`

	// IntersectingTunnels counts dogleg tunnels carved through a third room
	IntersectingTunnels int `json:"intersecting_tunnels"`
}

// OK reports whether the run finished without any degraded outcome
func (d Diagnostics) OK() bool {
	return !d.PlacementExhausted && d.FallbackSelections == 0 &&
		len(d.DisconnectedRooms) == 0 && d.IntersectingTunnels == 0
}

// Dungeon is the result of one generation run
type Dungeon struct {
	Seed   int64
	Config config.Config
	Grid   *world.Grid

	// Rooms holds the placed rooms; Rooms[i].ID == i
	Rooms []*rooms.Room

	// CandidateEdges is the number of anchor pairs considered
	CandidateEdges int

	// Edges are the selected connections in selection order
	Edges []Edge

	// Degrees is the selected edge count per room
	Degrees []int

	// Tunnels has one entry per selected edge, in the same order
	Tunnels []Tunnel

	// Entry is the room chosen as the entrance, or -1
	Entry int

	Diagnostics Diagnostics
}

// RoomCount returns the number of rooms actually placed
func (d *Dungeon) RoomCount() int {
	return len(d.Rooms)
}
