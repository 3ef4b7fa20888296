package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, a...))
}

// MaxDrawnBossRadius returns the largest radius a boss room can be generated with.
// Radii are drawn from [min, max) and floored.
func (c Config) MaxDrawnBossRadius() float64 {
	return math.Ceil(c.MaxBossRadius) - 1
}

// Validate checks the configuration before it enters the pipeline. It returns
// every problem found, joined, or nil.
func (c Config) Validate() error {
	var errs []error

	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		errs = append(errs, invalid("world size %dx%d must be positive", c.WorldWidth, c.WorldHeight))
	}
	if c.MinRoomWidth <= 0 || c.MinRoomHeight <= 0 {
		errs = append(errs, invalid("minimum room size %dx%d must be positive", c.MinRoomWidth, c.MinRoomHeight))
	}
	if c.MinRoomWidth >= c.MaxRoomWidth {
		errs = append(errs, invalid("min_room_width %d must be below max_room_width %d", c.MinRoomWidth, c.MaxRoomWidth))
	}
	if c.MinRoomHeight >= c.MaxRoomHeight {
		errs = append(errs, invalid("min_room_height %d must be below max_room_height %d", c.MinRoomHeight, c.MaxRoomHeight))
	}
	if c.MaxRoomWidth >= c.WorldWidth {
		errs = append(errs, invalid("max_room_width %d does not fit in world_width %d", c.MaxRoomWidth, c.WorldWidth))
	}
	if c.MaxRoomHeight >= c.WorldHeight {
		errs = append(errs, invalid("max_room_height %d does not fit in world_height %d", c.MaxRoomHeight, c.WorldHeight))
	}
	if c.RoomCount < 0 {
		errs = append(errs, invalid("room_count %d is negative", c.RoomCount))
	}
	if c.MaxChests < 0 {
		errs = append(errs, invalid("max_chests %d is negative", c.MaxChests))
	}
	if c.PlacementAttempts <= 0 {
		errs = append(errs, invalid("placement_attempts %d must be positive", c.PlacementAttempts))
	}
	if c.TunnelRetries <= 0 {
		errs = append(errs, invalid("tunnel_retries %d must be positive", c.TunnelRetries))
	}

	errs = append(errs, c.validateRoomTypes()...)

	if c.HasShape(ShapeBoss) {
		errs = append(errs, c.validateBoss()...)
	}

	if len(errs) == 0 {
		if err := c.validateFootprint(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (c Config) validateRoomTypes() []error {
	var errs []error
	for i, rt := range c.RoomTypes {
		switch rt.Shape {
		case ShapeRectangular, ShapeBoss:
		default:
			errs = append(errs, invalid("room_types[%d]: unknown shape %q", i, rt.Shape))
		}
		if rt.Weight < 0 {
			errs = append(errs, invalid("room_types[%d]: weight %d is negative", i, rt.Weight))
		}
		if rt.PerWorldMin < 0 {
			errs = append(errs, invalid("room_types[%d]: per_world_min %d is negative", i, rt.PerWorldMin))
		}
		if rt.MaxDoors < 0 {
			errs = append(errs, invalid("room_types[%d]: max_doors %d is negative", i, rt.MaxDoors))
		}
	}
	return errs
}

func (c Config) validateBoss() []error {
	var errs []error
	if c.MinBossRadius <= 0 {
		errs = append(errs, invalid("min_boss_radius %v must be positive", c.MinBossRadius))
	}
	if c.MinBossRadius >= c.MaxBossRadius {
		errs = append(errs, invalid("min_boss_radius %v must be below max_boss_radius %v", c.MinBossRadius, c.MaxBossRadius))
		return errs
	}
	w, h := c.BossSize(c.MaxDrawnBossRadius())
	if w >= c.WorldWidth || h >= c.WorldHeight {
		errs = append(errs, invalid("boss room of %dx%d does not fit in a %dx%d world", w, h, c.WorldWidth, c.WorldHeight))
	}
	return errs
}

// validateFootprint rejects room counts that cannot fit even with every room at
// its smallest size. Each room needs a one-tile margin to its neighbours.
func (c Config) validateFootprint() error {
	bosses := 0
	for _, rt := range c.RoomTypes {
		if rt.Shape == ShapeBoss {
			bosses += rt.PerWorldMin
		}
	}
	bosses = min(bosses, c.RoomCount)

	need := (c.RoomCount - bosses) * (c.MinRoomWidth + 1) * (c.MinRoomHeight + 1)
	if bosses > 0 {
		w, h := c.BossSize(math.Floor(c.MinBossRadius))
		need += bosses * (w + 1) * (h + 1)
	}

	if area := c.WorldWidth * c.WorldHeight; need > area {
		return invalid("room_count %d needs at least %d tiles, world has %d", c.RoomCount, need, area)
	}
	return nil
}
