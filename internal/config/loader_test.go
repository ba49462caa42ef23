package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBrawlEmbeddedDefault(t *testing.T) {
	cfg, err := LoadBrawl("")
	if err != nil {
		t.Fatalf("LoadBrawl returned error: %v", err)
	}

	want := DefaultBrawlConfig()
	if cfg.World != want.World {
		t.Errorf("world = %+v, expected %+v", cfg.World, want.World)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Combat != want.Combat {
		t.Errorf("combat = %+v, expected %+v", cfg.Combat, want.Combat)
	}
}

func TestLoadBrawlCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brawl.yaml")
	custom := `
world:
  width: 640
  height: 320
combat:
  max_hp: 42
  damage: 7
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBrawl(path)
	if err != nil {
		t.Fatalf("LoadBrawl returned error: %v", err)
	}
	if cfg.World.Width != 640 || cfg.World.Height != 320 {
		t.Errorf("world = %+v, expected custom 640x320", cfg.World)
	}
	if cfg.Combat.MaxHP != 42 || cfg.Combat.Damage != 7 {
		t.Errorf("combat = %+v, expected custom values", cfg.Combat)
	}
}

func TestLoadBrawlMissingCustomPathFails(t *testing.T) {
	if _, err := LoadBrawl(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadOrbitEmbeddedDefault(t *testing.T) {
	cfg, err := LoadOrbit("")
	if err != nil {
		t.Fatalf("LoadOrbit returned error: %v", err)
	}
	if cfg != DefaultOrbitConfig() {
		t.Errorf("cfg = %+v, expected embedded defaults %+v", cfg, DefaultOrbitConfig())
	}
}

func TestLoadSpringsEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSprings("")
	if err != nil {
		t.Fatalf("LoadSprings returned error: %v", err)
	}
	if cfg != DefaultSpringsConfig() {
		t.Errorf("cfg = %+v, expected embedded defaults %+v", cfg, DefaultSpringsConfig())
	}
}

func TestLoadMalformedCustomPathFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBrawl(path); err == nil {
		t.Error("expected parse error for malformed YAML")
	}
}
