package server

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// RoomSummary describes one placed room
type RoomSummary struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	Bounds   [4]int `json:"bounds"` // left, top, right, bottom
	Doors    int    `json:"doors"`
	MaxDoors int    `json:"max_doors"`
}

// EdgeSummary describes one selected connection
type EdgeSummary struct {
	A      int     `json:"a"`
	B      int     `json:"b"`
	Weight float64 `json:"weight"`
	Tunnel string  `json:"tunnel"`
}

// Summary is the JSON form of a dungeon
type Summary struct {
	Seed        int64                 `json:"seed"`
	Width       int                   `json:"width"`
	Height      int                   `json:"height"`
	Entry       int                   `json:"entry"`
	Rooms       []RoomSummary         `json:"rooms"`
	Edges       []EdgeSummary         `json:"edges"`
	Rows        []string              `json:"rows"`
	Diagnostics generator.Diagnostics `json:"diagnostics"`
}

// Summarize converts a dungeon into its JSON form. Rows hold one symbol
// per cell.
func Summarize(d *generator.Dungeon) Summary {
	s := Summary{
		Seed:        d.Seed,
		Width:       d.Grid.Cols(),
		Height:      d.Grid.Rows(),
		Entry:       d.Entry,
		Rooms:       make([]RoomSummary, 0, len(d.Rooms)),
		Edges:       make([]EdgeSummary, 0, len(d.Edges)),
		Rows:        make([]string, 0, d.Grid.Rows()),
		Diagnostics: d.Diagnostics,
	}

	for _, r := range d.Rooms {
		b := r.Bounds()
		s.Rooms = append(s.Rooms, RoomSummary{
			ID:       r.ID,
			Type:     r.Type,
			Bounds:   [4]int{b.Left, b.Top, b.Right, b.Bottom},
			Doors:    d.Degrees[r.ID],
			MaxDoors: r.MaxDoors,
		})
	}
	for i, e := range d.Edges {
		es := EdgeSummary{A: e.A, B: e.B, Weight: e.Weight}
		if i < len(d.Tunnels) {
			es.Tunnel = d.Tunnels[i].Kind.String()
		}
		s.Edges = append(s.Edges, es)
	}
	for row := 0; row < d.Grid.Rows(); row++ {
		s.Rows = append(s.Rows, rowString(d.Grid.Row(row)))
	}
	return s
}

func rowString(tiles []world.Tile) string {
	buf := make([]rune, len(tiles))
	for i, t := range tiles {
		buf[i] = t.Symbol()
	}
	return string(buf)
}
