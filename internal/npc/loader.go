package npc

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed mobs.yaml
var defaultMobsYAML []byte

// EnemyDefinition represents an enemy definition from the YAML file
type EnemyDefinition struct {
	Name         string  `yaml:"name"`
	BaseHP       int     `yaml:"base_hp"`
	AttackFactor float64 `yaml:"attack_factor"`
	BaseAttack   int     `yaml:"base_attack"`
	ExtraTurns   int     `yaml:"extra_turns"`
}

// MobsConfig represents the structure of the mobs.yaml file
type MobsConfig struct {
	Enemies []EnemyDefinition `yaml:"enemies"`
}

// LoadMobsFromYAML loads enemy definitions from a YAML file
func LoadMobsFromYAML(filename string) (*MobsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read mobs file: %w", err)
	}
	return parseMobs(data)
}

func parseMobs(data []byte) (*MobsConfig, error) {
	var config MobsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse mobs YAML: %w", err)
	}
	return &config, nil
}

// Roster is the table regular enemies are rolled from
type Roster struct {
	defs []EnemyDefinition
}

// NewRoster validates definitions and builds a roster
func NewRoster(config *MobsConfig) (*Roster, error) {
	if len(config.Enemies) == 0 {
		return nil, fmt.Errorf("mob roster is empty")
	}
	seen := make(map[string]bool)
	defs := make([]EnemyDefinition, 0, len(config.Enemies))
	for _, def := range config.Enemies {
		if def.Name == "" {
			return nil, fmt.Errorf("enemy definition without a name")
		}
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate enemy %q", def.Name)
		}
		if def.BaseHP <= 0 {
			return nil, fmt.Errorf("enemy %q: base_hp must be positive", def.Name)
		}
		if def.AttackFactor == 0 {
			def.AttackFactor = 1
		}
		seen[def.Name] = true
		defs = append(defs, def)
	}
	return &Roster{defs: defs}, nil
}

// DefaultRoster returns the built-in enemy table
func DefaultRoster() *Roster {
	config, err := parseMobs(defaultMobsYAML)
	if err != nil {
		panic(err)
	}
	r, err := NewRoster(config)
	if err != nil {
		panic(err)
	}
	return r
}

// LoadRoster loads a roster from path, or the built-in table when path is empty
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	config, err := LoadMobsFromYAML(path)
	if err != nil {
		return nil, err
	}
	return NewRoster(config)
}

// Names returns the enemy names in table order
func (r *Roster) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Definition looks up an enemy by name
func (r *Roster) Definition(name string) (EnemyDefinition, bool) {
	for _, d := range r.defs {
		if d.Name == name {
			return d, true
		}
	}
	return EnemyDefinition{}, false
}
