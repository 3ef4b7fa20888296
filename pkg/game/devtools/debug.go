package devtools

import (
	"bufio"
	"fmt"
	"io"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/rooms"
)

// WriteDebug writes a full debug dump: metadata, rooms with their anchors,
// selected edges, tunnels and diagnostics. Sections hold key: value lines.
func WriteDebug(w io.Writer, d *generator.Dungeon) error {
	bw := bufio.NewWriter(w)
	cfg := d.Config

	fmt.Fprintln(bw, "=== DUNGEON DEBUG ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", d.Seed)
	fmt.Fprintf(bw, "world_width: %d\n", cfg.WorldWidth)
	fmt.Fprintf(bw, "world_height: %d\n", cfg.WorldHeight)
	fmt.Fprintf(bw, "coordinate_system: x=col y=row (0-based), rects are (left,top,right,bottom) with right/bottom exclusive\n")
	fmt.Fprintf(bw, "rooms_requested: %d\n", d.Diagnostics.RequestedRooms)
	fmt.Fprintf(bw, "rooms_placed: %d\n", d.RoomCount())
	fmt.Fprintf(bw, "candidate_edges: %d\n", d.CandidateEdges)
	fmt.Fprintf(bw, "selected_edges: %d\n", len(d.Edges))
	fmt.Fprintf(bw, "entry_room: %d\n", d.Entry)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Rooms ---")
	for _, r := range d.Rooms {
		fmt.Fprintf(bw, "#%d: type: %s bounds: %v doors: %d/%d", r.ID, r.Type, r.Bounds(), degree(d, r.ID), r.MaxDoors)
		if boss, ok := r.Shape.(*rooms.BossRoom); ok {
			fmt.Fprintf(bw, " center: %d,%d radius: %.0f", boss.Center().X, boss.Center().Y, boss.Radius())
		}
		if chests := r.Chests(); len(chests) > 0 {
			fmt.Fprintf(bw, " chests: %v", chests)
		}
		fmt.Fprintln(bw)
		for i, a := range r.DoorAnchors() {
			fmt.Fprintf(bw, "  anchor %d: %v\n", i, a)
		}
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Edges (selection order) ---")
	for _, e := range d.Edges {
		fmt.Fprintf(bw, "%v\n", e)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Tunnels ---")
	for _, t := range d.Tunnels {
		fmt.Fprintf(bw, "%d-%d: kind: %s attempts: %d intersecting: %v segments: %v\n",
			t.Edge.A, t.Edge.B, t.Kind, t.Attempts, t.Intersecting, t.Segments)
	}
	fmt.Fprintln(bw, "")

	diag := d.Diagnostics
	fmt.Fprintln(bw, "--- Diagnostics ---")
	fmt.Fprintf(bw, "placement_exhausted: %v\n", diag.PlacementExhausted)
	fmt.Fprintf(bw, "candidates_tried: %d\n", diag.CandidatesTried)
	fmt.Fprintf(bw, "fallback_selections: %d\n", diag.FallbackSelections)
	fmt.Fprintf(bw, "disconnected_rooms: %v\n", diag.DisconnectedRooms)
	fmt.Fprintf(bw, "intersecting_tunnels: %d\n", diag.IntersectingTunnels)

	return bw.Flush()
}

func degree(d *generator.Dungeon, id int) int {
	if id < len(d.Degrees) {
		return d.Degrees[id]
	}
	return 0
}

// FormatEvent renders a pipeline event as a single key: value line
func FormatEvent(e generator.Event) string {
	switch e.Kind {
	case generator.EventRoomPlaced:
		return fmt.Sprintf("%s: room: %d type: %s bounds: %v attempts: %d", e.Kind, e.Room.ID, e.Room.Type, e.Room.Bounds(), e.Attempts)
	case generator.EventPlacementExhausted:
		return fmt.Sprintf("%s: index: %d type: %s attempts: %d", e.Kind, e.Index, e.RoomType.Shape, e.Attempts)
	case generator.EventTypeFallback:
		return fmt.Sprintf("%s: index: %d type: %s", e.Kind, e.Index, e.RoomType.Shape)
	case generator.EventEdgeSelected:
		return fmt.Sprintf("%s: %v", e.Kind, *e.Edge)
	case generator.EventRoomDisconnected:
		return fmt.Sprintf("%s: room: %d", e.Kind, e.Room.ID)
	case generator.EventTunnelCarved:
		return fmt.Sprintf("%s: %d-%d kind: %s attempts: %d intersecting: %v",
			e.Kind, e.Edge.A, e.Edge.B, e.Tunnel.Kind, e.Attempts, e.Tunnel.Intersecting)
	}
	return e.Kind.String()
}
