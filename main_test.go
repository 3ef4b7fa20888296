package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_FlagOverrides(t *testing.T) {
	cfg, err := loadConfig(options{width: 60, height: 70, rooms: 5, seed: 9})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorldWidth != 60 || cfg.WorldHeight != 70 || cfg.RoomCount != 5 || cfg.Seed != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"room_count": 4, "seed": 77}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(options{configPath: path, rooms: 6})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RoomCount != 6 || cfg.Seed != 77 {
		t.Errorf("RoomCount = %d Seed = %d, want 6 and 77", cfg.RoomCount, cfg.Seed)
	}
}

func TestLoadConfig_ClockSeed(t *testing.T) {
	cfg, err := loadConfig(options{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == 0 {
		t.Error("seed 0 was not replaced")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "nope.json")}); err == nil {
		t.Error("expected an error for a missing file")
	}
}
