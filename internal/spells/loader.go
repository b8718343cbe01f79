package spells

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed spells.yaml
var defaultSpellsYAML []byte

// SpellDefinition represents a spell definition from the YAML file.
type SpellDefinition struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Damage         int    `yaml:"damage"`
	ManaCost       int    `yaml:"mana_cost"`
	Effect         string `yaml:"effect"`
	EffectDamage   int    `yaml:"effect_damage"`
	EffectDuration int    `yaml:"effect_duration"`
}

// SpellsConfig represents the structure of the spells.yaml file.
type SpellsConfig struct {
	Spells []SpellDefinition `yaml:"spells"`
}

// LoadSpellsFromYAML loads spell definitions from a YAML file.
func LoadSpellsFromYAML(filename string) (*SpellsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read spells file: %w", err)
	}
	return parseSpells(data)
}

func parseSpells(data []byte) (*SpellsConfig, error) {
	var config SpellsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse spells YAML: %w", err)
	}
	return &config, nil
}

// Registry holds all loaded spells in offer order
type Registry struct {
	spells map[string]*Spell
	order  []string
}

// NewRegistry builds a registry from parsed definitions
func NewRegistry(config *SpellsConfig) (*Registry, error) {
	r := &Registry{spells: make(map[string]*Spell)}
	for _, def := range config.Spells {
		if def.Name == "" {
			return nil, fmt.Errorf("spell definition without a name")
		}
		if _, dup := r.spells[def.Name]; dup {
			return nil, fmt.Errorf("duplicate spell %q", def.Name)
		}
		effect, ok := ParseEffectType(def.Effect)
		if !ok {
			return nil, fmt.Errorf("spell %q: unknown effect %q", def.Name, def.Effect)
		}
		if def.ManaCost < 0 || def.Damage < 0 {
			return nil, fmt.Errorf("spell %q: negative damage or mana cost", def.Name)
		}
		r.spells[def.Name] = &Spell{
			Name:           def.Name,
			Description:    def.Description,
			Damage:         def.Damage,
			ManaCost:       def.ManaCost,
			Effect:         effect,
			EffectDamage:   def.EffectDamage,
			EffectDuration: def.EffectDuration,
		}
		r.order = append(r.order, def.Name)
	}
	return r, nil
}

// DefaultRegistry returns the built-in spell list
func DefaultRegistry() *Registry {
	config, err := parseSpells(defaultSpellsYAML)
	if err != nil {
		panic(err)
	}
	r, err := NewRegistry(config)
	if err != nil {
		panic(err)
	}
	return r
}

// LoadRegistry loads a registry from path, or the built-in list when path is empty
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	config, err := LoadSpellsFromYAML(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(config)
}

// Get returns a spell by name
func (r *Registry) Get(name string) (*Spell, bool) {
	s, ok := r.spells[name]
	return s, ok
}

// Names returns every spell name in offer order
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Unlearned returns the spell names not in known, in offer order
func (r *Registry) Unlearned(known []string) []string {
	have := make(map[string]bool, len(known))
	for _, k := range known {
		have[k] = true
	}
	var out []string
	for _, name := range r.order {
		if !have[name] {
			out = append(out, name)
		}
	}
	return out
}
