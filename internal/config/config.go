package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/database"
	"github.com/lawnchairsociety/delver/internal/player"
)

// DefaultPath is where the game looks for its configuration file
const DefaultPath = "data/delver.yaml"

// Save drivers
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// GameConfig holds every tunable of a game session.
type GameConfig struct {
	Player  PlayerConfig  `yaml:"player"`
	Combat  combat.Config `yaml:"combat"`
	Save    SaveConfig    `yaml:"save"`
	Content ContentConfig `yaml:"content"`

	// Seed fixes the world generator. 0 seeds from the clock.
	Seed int64 `yaml:"seed" env:"DELVER_SEED"`
}

// PlayerConfig holds the starting character.
type PlayerConfig struct {
	HP              int `yaml:"hp"`
	Stamina         int `yaml:"stamina"`
	Mana            int `yaml:"mana"`
	WaypointScrolls int `yaml:"waypoint_scrolls"`
}

// SaveConfig selects where save slots live.
type SaveConfig struct {
	// Driver is "file", "sqlite" or "postgres"
	Driver string `yaml:"driver" env:"DELVER_SAVE_DRIVER"`

	// Dir holds one JSON file per slot when Driver is "file"
	Dir string `yaml:"dir" env:"DELVER_SAVE_DIR"`

	SQLitePath string         `yaml:"sqlite_path" env:"DELVER_SQLITE_PATH"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

// PostgresConfig holds the connection parts for the postgres driver.
type PostgresConfig struct {
	URL      string `yaml:"url" env:"DELVER_POSTGRES_URL"`
	Host     string `yaml:"host" env:"DELVER_POSTGRES_HOST"`
	Port     int    `yaml:"port" env:"DELVER_POSTGRES_PORT"`
	User     string `yaml:"user" env:"DELVER_POSTGRES_USER"`
	Password string `yaml:"password" env:"DELVER_POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"DELVER_POSTGRES_DB"`
	SSLMode  string `yaml:"sslmode" env:"DELVER_POSTGRES_SSLMODE"`
}

// ContentConfig points at replacement content files. Empty paths use the
// built-in content.
type ContentConfig struct {
	Mobs   string `yaml:"mobs"`
	Spells string `yaml:"spells"`
	Rooms  string `yaml:"rooms"`
	Help   string `yaml:"help"`
}

// DefaultConfig returns the standard game.
func DefaultConfig() *GameConfig {
	opts := player.DefaultOptions()
	pg := database.DefaultPostgresConfig()
	return &GameConfig{
		Player: PlayerConfig{
			HP:              opts.HP,
			Stamina:         opts.Stamina,
			Mana:            opts.Mana,
			WaypointScrolls: opts.WaypointScrolls,
		},
		Combat: combat.DefaultConfig(),
		Save: SaveConfig{
			Driver:     DriverFile,
			Dir:        "saves",
			SQLitePath: filepath.Join("data", "saves.db"),
			Postgres: PostgresConfig{
				Host:     pg.Host,
				Port:     pg.Port,
				User:     pg.User,
				Database: pg.Database,
				SSLMode:  pg.SSLMode,
			},
		},
	}
}

// LoadConfig loads game configuration from a YAML file and applies
// environment overrides. A missing file means defaults; a file that
// can't be parsed returns defaults along with the error.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return config, err
	}

	if err := env.Parse(config); err != nil {
		return config, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	config.Validate()
	return config, nil
}

// Validate replaces nonsensical values with defaults.
func (c *GameConfig) Validate() {
	def := DefaultConfig()

	if c.Player.HP <= 0 {
		c.Player.HP = def.Player.HP
	}
	if c.Player.Stamina < 0 {
		c.Player.Stamina = def.Player.Stamina
	}
	if c.Player.Mana < 0 {
		c.Player.Mana = def.Player.Mana
	}
	c.Player.WaypointScrolls = max(0, min(c.Player.WaypointScrolls, player.MaxWaypointScrolls))

	if c.Combat.FistDamage <= 0 {
		c.Combat.FistDamage = def.Combat.FistDamage
	}
	if c.Combat.FistCritChance < 0 || c.Combat.FistCritChance > 1 {
		c.Combat.FistCritChance = def.Combat.FistCritChance
	}
	if c.Combat.FistCritMultiplier < 1 {
		c.Combat.FistCritMultiplier = def.Combat.FistCritMultiplier
	}
	if c.Combat.GoldDrop == "" {
		c.Combat.GoldDrop = def.Combat.GoldDrop
	}

	switch c.Save.Driver {
	case DriverFile, DriverSQLite, DriverPostgres:
	default:
		c.Save.Driver = def.Save.Driver
	}
	if c.Save.Dir == "" {
		c.Save.Dir = def.Save.Dir
	}
	if c.Save.SQLitePath == "" {
		c.Save.SQLitePath = def.Save.SQLitePath
	}
	if c.Save.Postgres.Port <= 0 {
		c.Save.Postgres.Port = def.Save.Postgres.Port
	}
}

// PlayerOptions converts the player section for player.New.
func (c *GameConfig) PlayerOptions() player.Options {
	return player.Options{
		HP:              c.Player.HP,
		Stamina:         c.Player.Stamina,
		Mana:            c.Player.Mana,
		WaypointScrolls: c.Player.WaypointScrolls,
	}
}

// DatabaseConfig converts the save section for database.OpenWithConfig.
// It is meaningless for the file driver.
func (c *GameConfig) DatabaseConfig() database.Config {
	pg := database.DefaultPostgresConfig()
	pg.URL = c.Save.Postgres.URL
	pg.Host = c.Save.Postgres.Host
	pg.Port = c.Save.Postgres.Port
	pg.User = c.Save.Postgres.User
	pg.Password = c.Save.Postgres.Password
	pg.Database = c.Save.Postgres.Database
	pg.SSLMode = c.Save.Postgres.SSLMode

	return database.Config{
		Driver:     c.Save.Driver,
		SQLitePath: c.Save.SQLitePath,
		Postgres:   pg,
	}
}
