package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "delver.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Player.HP != 50 || cfg.Player.Stamina != 20 || cfg.Player.Mana != 20 {
		t.Errorf("player defaults = %+v", cfg.Player)
	}
	if cfg.Combat.FistDamage != 3 || cfg.Combat.GoldDrop != "1d11+4" {
		t.Errorf("combat defaults = %+v", cfg.Combat)
	}
	if cfg.Save.Driver != DriverFile || cfg.Save.Dir != "saves" {
		t.Errorf("save defaults = %+v", cfg.Save)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/delver.yaml")
	if err != nil {
		t.Errorf("expected no error for missing file, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected default config for missing file, got nil")
	}
	if cfg.Player.HP != 50 {
		t.Errorf("expected default HP, got %d", cfg.Player.HP)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
player:
  hp: 80
  stamina: 30
  mana: 10
  waypoint_scrolls: 2
combat:
  fist_damage: 5
  gold_drop: "2d6"
save:
  driver: sqlite
  sqlite_path: /tmp/delver.db
content:
  mobs: mods/mobs.yaml
seed: 42
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Player.HP != 80 || cfg.Player.WaypointScrolls != 2 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if cfg.Combat.FistDamage != 5 || cfg.Combat.GoldDrop != "2d6" {
		t.Errorf("combat = %+v", cfg.Combat)
	}
	// Keys absent from the file keep their defaults
	if cfg.Combat.FistCritMultiplier != 2.0 {
		t.Errorf("FistCritMultiplier = %v, want default 2.0", cfg.Combat.FistCritMultiplier)
	}
	if cfg.Save.Driver != DriverSQLite || cfg.Save.SQLitePath != "/tmp/delver.db" {
		t.Errorf("save = %+v", cfg.Save)
	}
	if cfg.Content.Mobs != "mods/mobs.yaml" || cfg.Seed != 42 {
		t.Errorf("content/seed = %+v / %d", cfg.Content, cfg.Seed)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "player: [not, a, map")

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
	if cfg == nil || cfg.Player.HP != 50 {
		t.Error("expected defaults alongside the parse error")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "save:\n  driver: file\n")
	t.Setenv("DELVER_SAVE_DRIVER", "postgres")
	t.Setenv("DELVER_POSTGRES_HOST", "db.internal")
	t.Setenv("DELVER_POSTGRES_PORT", "6543")
	t.Setenv("DELVER_SEED", "7")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Save.Driver != DriverPostgres {
		t.Errorf("Driver = %q, want postgres", cfg.Save.Driver)
	}
	if cfg.Save.Postgres.Host != "db.internal" || cfg.Save.Postgres.Port != 6543 {
		t.Errorf("postgres = %+v", cfg.Save.Postgres)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}

	db := cfg.DatabaseConfig()
	if db.Driver != "postgres" || db.Postgres.Host != "db.internal" || db.Postgres.MaxOpenConns == 0 {
		t.Errorf("DatabaseConfig = %+v", db)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*GameConfig)
		check func(*GameConfig) bool
	}{
		{"non-positive hp", func(c *GameConfig) { c.Player.HP = 0 }, func(c *GameConfig) bool { return c.Player.HP == 50 }},
		{"negative mana", func(c *GameConfig) { c.Player.Mana = -5 }, func(c *GameConfig) bool { return c.Player.Mana == 20 }},
		{"too many scrolls", func(c *GameConfig) { c.Player.WaypointScrolls = 9 }, func(c *GameConfig) bool { return c.Player.WaypointScrolls == 3 }},
		{"zero fist damage", func(c *GameConfig) { c.Combat.FistDamage = 0 }, func(c *GameConfig) bool { return c.Combat.FistDamage == 3 }},
		{"crit chance above one", func(c *GameConfig) { c.Combat.FistCritChance = 1.5 }, func(c *GameConfig) bool { return c.Combat.FistCritChance == 0.05 }},
		{"unknown driver", func(c *GameConfig) { c.Save.Driver = "mysql" }, func(c *GameConfig) bool { return c.Save.Driver == DriverFile }},
		{"empty save dir", func(c *GameConfig) { c.Save.Dir = "" }, func(c *GameConfig) bool { return c.Save.Dir == "saves" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.apply(cfg)
			cfg.Validate()
			if !tt.check(cfg) {
				t.Errorf("Validate did not repair: %+v", cfg)
			}
		})
	}
}

func TestPlayerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Player.HP = 70

	opts := cfg.PlayerOptions()
	if opts.HP != 70 || opts.Stamina != 20 || opts.WaypointScrolls != 1 {
		t.Errorf("PlayerOptions = %+v", opts)
	}
}
