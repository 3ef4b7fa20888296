package generator

import (
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/rooms"
)

// EventKind identifies a point in the pipeline where a listener is notified
type EventKind int

// Event kinds
const (
	EventRoomPlaced EventKind = iota
	EventPlacementExhausted
	EventTypeFallback
	EventEdgeSelected
	EventRoomDisconnected
	EventTunnelCarved
)

var eventNames = map[EventKind]string{
	EventRoomPlaced:         "room_placed",
	EventPlacementExhausted: "placement_exhausted",
	EventTypeFallback:       "type_fallback",
	EventEdgeSelected:       "edge_selected",
	EventRoomDisconnected:   "room_disconnected",
	EventTunnelCarved:       "tunnel_carved",
}

// String returns the snake_case name of the kind
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is passed to a Listener. Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// Index is the room index being placed (placement events)
	Index int

	// Attempts is the candidate count for placement or the dogleg attempt count
	Attempts int

	Room     *rooms.Room
	RoomType config.RoomType
	Edge     *Edge
	Tunnel   *Tunnel
}

// Listener receives pipeline events. It is called synchronously.
type Listener func(Event)

func (l Listener) emit(e Event) {
	if l != nil {
		l(e)
	}
}
