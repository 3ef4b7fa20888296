// Package generator builds dungeons: rooms by rejection sampling, a door
// graph connected by a degree-capped minimum spanning tree, and tunnels
// carved along the selected edges.
package generator

import (
	"math/rand"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/rooms"
)

// DungeonGenerator is implemented by anything that can produce a dungeon
// from a seed
type DungeonGenerator interface {
	Generate(seed int64) *Dungeon
	Name() string
}

// Generator runs the full pipeline for a validated config
type Generator struct {
	cfg      config.Config
	listener Listener
}

// Option configures a Generator
type Option func(*Generator)

// WithListener installs an event listener
func WithListener(l Listener) Option {
	return func(g *Generator) {
		g.listener = l
	}
}

// New validates cfg and returns a generator for it
func New(cfg config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{cfg: cfg}
	g.cfg.RoomTypes = append([]config.RoomType(nil), cfg.RoomTypes...)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate is a one-shot New followed by Generate
func Generate(cfg config.Config, seed int64, opts ...Option) (*Dungeon, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(seed), nil
}

// Name returns the name of this generator
func (g *Generator) Name() string {
	return "Rooms + Kruskal"
}

// Config returns the generator's config
func (g *Generator) Config() config.Config {
	return g.cfg
}

// Generate builds a dungeon. The same seed always gives the same dungeon.
func (g *Generator) Generate(seed int64) *Dungeon {
	d, rng := g.newDungeon(seed)

	placement := PlaceRooms(d.Grid, d.Config, seed, rng, g.listener)
	d.Rooms = placement.Rooms
	d.Diagnostics.PlacementExhausted = placement.Exhausted
	d.Diagnostics.FallbackSelections = placement.Fallbacks
	d.Diagnostics.CandidatesTried = placement.CandidatesTried

	g.connect(d, rng)
	return d
}

// FromRooms builds a dungeon around hand-placed rooms, skipping placement.
// Room ids are reassigned to their index in rs.
func (g *Generator) FromRooms(seed int64, rs []*rooms.Room) *Dungeon {
	d, rng := g.newDungeon(seed)
	d.Diagnostics.RequestedRooms = len(rs)

	d.Rooms = rs
	for i, r := range rs {
		r.ID = i
		if d.Config.Features.Rooms {
			r.Populate(d.Grid)
		}
		if d.Config.Features.Decor {
			r.PopulateDecor(d.Grid)
		}
		g.listener.emit(Event{Kind: EventRoomPlaced, Index: i, Room: r})
	}

	g.connect(d, rng)
	return d
}

func (g *Generator) newDungeon(seed int64) (*Dungeon, *rand.Rand) {
	cfg := g.cfg
	cfg.Seed = seed

	d := &Dungeon{
		Seed:   seed,
		Config: cfg,
		Grid:   world.NewGrid(cfg.WorldHeight, cfg.WorldWidth),
		Entry:  -1,
	}
	d.Diagnostics.RequestedRooms = cfg.RoomCount
	return d, rand.New(rand.NewSource(seed))
}

// connect runs everything after placement: edges, the spanning forest,
// tunnels and the entry room
func (g *Generator) connect(d *Dungeon, rng *rand.Rand) {
	edges := BuildEdges(d.Rooms)
	d.CandidateEdges = len(edges)

	forest := Connect(d.Rooms, edges, g.listener)
	d.Edges = forest.Edges
	d.Degrees = forest.Degrees
	d.Diagnostics.DisconnectedRooms = forest.Disconnected

	carver := NewCarver(d.Grid, d.Rooms, d.Config, rng)
	d.Tunnels = make([]Tunnel, 0, len(d.Edges))
	for _, e := range d.Edges {
		t := carver.Carve(e)
		if t.Intersecting {
			d.Diagnostics.IntersectingTunnels++
		}
		d.Tunnels = append(d.Tunnels, t)
		g.listener.emit(Event{Kind: EventTunnelCarved, Attempts: t.Attempts, Edge: &t.Edge, Tunnel: &t})
	}

	d.Entry = ChooseEntry(forest, rng)
}
