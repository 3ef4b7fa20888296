// Package config holds the immutable generation settings threaded through the
// dungeon pipeline.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Shape names recognised in the room type table
const (
	ShapeRectangular = "rectangular"
	ShapeBoss        = "boss"
)

// Default maximum door counts per shape
const (
	DefaultRectangularDoors = 3
	DefaultBossDoors        = 2
)

// Defaults for the bounded loops
const (
	DefaultPlacementAttempts = 128
	DefaultTunnelRetries     = 32
)

// RoomType is one entry of the weighted room type table
type RoomType struct {
	Shape       string `json:"shape"`
	Weight      int    `json:"weight"`
	PerWorldMin int    `json:"per_world_min"`
	Priority    int    `json:"priority"`
	MaxDoors    int    `json:"max_doors,omitempty"` // 0 = shape default
}

// Doors returns the maximum door count, falling back to the shape default
func (rt RoomType) Doors() int {
	if rt.MaxDoors > 0 {
		return rt.MaxDoors
	}
	return DefaultMaxDoors(rt.Shape)
}

// DefaultMaxDoors returns the door cap used when a room type leaves it unset
func DefaultMaxDoors(shape string) int {
	if shape == ShapeBoss {
		return DefaultBossDoors
	}
	return DefaultRectangularDoors
}

// Features switch the effect of a generation stage on the grid off without
// changing how generation runs. Rooms, tunnels and chests are still recorded.
type Features struct {
	Rooms bool `json:"rooms"`
	Paths bool `json:"paths"`
	Decor bool `json:"decor"`
}

// Config is the full generation configuration
type Config struct {
	WorldWidth  int `json:"world_width"`
	WorldHeight int `json:"world_height"`

	MinRoomWidth  int `json:"min_room_width"`
	MaxRoomWidth  int `json:"max_room_width"`
	MinRoomHeight int `json:"min_room_height"`
	MaxRoomHeight int `json:"max_room_height"`

	RoomCount int `json:"room_count"`

	MinBossRadius float64 `json:"min_boss_radius"`
	MaxBossRadius float64 `json:"max_boss_radius"`

	MaxChests int `json:"max_chests"`

	RoomTypes []RoomType `json:"room_types"`

	PlacementAttempts int `json:"placement_attempts"`
	TunnelRetries     int `json:"tunnel_retries"`

	Features Features `json:"features"`

	// Seed for the CLI. 0 means a time-based seed is chosen.
	Seed int64 `json:"seed"`
}

// Default returns the standard configuration: a tall 48x128 world with
// sixteen small rooms and one guaranteed boss room
func Default() Config {
	return Config{
		WorldWidth:    48,
		WorldHeight:   128,
		MinRoomWidth:  3,
		MaxRoomWidth:  6,
		MinRoomHeight: 3,
		MaxRoomHeight: 6,
		RoomCount:     16,
		MinBossRadius: 6.5,
		MaxBossRadius: 14.5,
		MaxChests:     2,
		RoomTypes: []RoomType{
			{Shape: ShapeRectangular, Weight: 95, PerWorldMin: 0, Priority: 0, MaxDoors: DefaultRectangularDoors},
			{Shape: ShapeBoss, Weight: 5, PerWorldMin: 1, Priority: 99, MaxDoors: DefaultBossDoors},
		},
		PlacementAttempts: DefaultPlacementAttempts,
		TunnelRetries:     DefaultTunnelRetries,
		Features:          Features{Rooms: true, Paths: true, Decor: true},
	}
}

// Load reads a JSON configuration file layered over Default
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// BossSize returns the width and height of a boss room bounding box for the
// given radius
func (c Config) BossSize(radius float64) (width, height int) {
	width = int(math.Round(2*float64(c.MinRoomWidth) + 2*radius))
	height = int(math.Round(2*float64(c.MinRoomHeight) + 2*radius))
	return width, height
}

// HasShape returns true if the room type table can produce the shape
func (c Config) HasShape(shape string) bool {
	for _, rt := range c.RoomTypes {
		if rt.Shape == shape && (rt.Weight > 0 || rt.PerWorldMin > 0) {
			return true
		}
	}
	return false
}

// MaxDoorsFor returns the door cap of the first table entry with the shape
func (c Config) MaxDoorsFor(shape string) int {
	for _, rt := range c.RoomTypes {
		if rt.Shape == shape {
			return rt.Doors()
		}
	}
	return DefaultMaxDoors(shape)
}
