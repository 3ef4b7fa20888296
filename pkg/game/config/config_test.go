package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate_RejectsBadRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"min width above max", func(c *Config) { c.MinRoomWidth = 7 }, "min_room_width"},
		{"min height equals max", func(c *Config) { c.MinRoomHeight = c.MaxRoomHeight }, "min_room_height"},
		{"room wider than world", func(c *Config) { c.WorldWidth = 6; c.RoomTypes = c.RoomTypes[:1] }, "max_room_width"},
		{"negative chests", func(c *Config) { c.MaxChests = -1 }, "max_chests"},
		{"no attempts", func(c *Config) { c.PlacementAttempts = 0 }, "placement_attempts"},
		{"no retries", func(c *Config) { c.TunnelRetries = 0 }, "tunnel_retries"},
		{"unknown shape", func(c *Config) { c.RoomTypes[0].Shape = "hexagon" }, "unknown shape"},
		{"negative weight", func(c *Config) { c.RoomTypes[0].Weight = -5 }, "weight"},
		{"boss radii swapped", func(c *Config) { c.MinBossRadius = 20 }, "min_boss_radius"},
		{"boss too big", func(c *Config) { c.MaxBossRadius = 40 }, "boss room"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			cfg.RoomTypes = append([]RoomType(nil), cfg.RoomTypes...)
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error does not wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestValidate_RejectsImpossibleRoomCount(t *testing.T) {
	cfg := Default()
	cfg.WorldWidth, cfg.WorldHeight = 20, 20
	cfg.RoomTypes = []RoomType{{Shape: ShapeRectangular, Weight: 1}}
	cfg.RoomCount = 26 // 26 * 4 * 4 = 416 > 400
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "room_count") {
		t.Fatalf("Validate() = %v, want room_count footprint error", err)
	}
	cfg.RoomCount = 25
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with 25 rooms = %v, want nil", err)
	}
}

func TestValidate_BossChecksSkippedWithoutBoss(t *testing.T) {
	cfg := Default()
	cfg.WorldWidth, cfg.WorldHeight = 20, 20
	cfg.RoomCount = 4
	cfg.RoomTypes = []RoomType{{Shape: ShapeRectangular, Weight: 1}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil (boss radii irrelevant without boss rooms)", err)
	}
}

func TestValidate_JoinsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.MaxChests = -1
	cfg.TunnelRetries = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "max_chests") || !strings.Contains(msg, "tunnel_retries") {
		t.Errorf("Validate() = %q, want both problems reported", msg)
	}
}

func TestRoomType_DoorsDefaults(t *testing.T) {
	if got := (RoomType{Shape: ShapeBoss}).Doors(); got != DefaultBossDoors {
		t.Errorf("boss Doors() = %d, want %d", got, DefaultBossDoors)
	}
	if got := (RoomType{Shape: ShapeRectangular}).Doors(); got != DefaultRectangularDoors {
		t.Errorf("rectangular Doors() = %d, want %d", got, DefaultRectangularDoors)
	}
	if got := (RoomType{Shape: ShapeBoss, MaxDoors: 4}).Doors(); got != 4 {
		t.Errorf("explicit Doors() = %d, want 4", got)
	}
}

func TestBossSize(t *testing.T) {
	cfg := Default()
	w, h := cfg.BossSize(6)
	if w != 18 || h != 18 {
		t.Errorf("BossSize(6) = %dx%d, want 18x18", w, h)
	}
	if r := cfg.MaxDrawnBossRadius(); r != 14 {
		t.Errorf("MaxDrawnBossRadius() = %v, want 14", r)
	}
}

func TestLoad_LayersOverDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.json")
	data := `{"world_width": 64, "room_count": 10, "features": {"rooms": true, "paths": false, "decor": true}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.WorldWidth != 64 || cfg.RoomCount != 10 {
		t.Errorf("Load() width=%d rooms=%d, want width 64 and 10 rooms", cfg.WorldWidth, cfg.RoomCount)
	}
	if cfg.WorldHeight != Default().WorldHeight {
		t.Errorf("WorldHeight = %d, want default %d", cfg.WorldHeight, Default().WorldHeight)
	}
	if cfg.Features.Paths {
		t.Error("Features.Paths = true, want false from file")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) = nil error")
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Load(bad) = %v, want parse error", err)
	}
}
