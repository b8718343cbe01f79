// Package spells provides the spells a spell book can cast.
package spells

// EffectType is the status effect a spell leaves on its target
type EffectType string

const (
	EffectNone     EffectType = ""
	EffectBurning  EffectType = "burning"
	EffectPoisoned EffectType = "poisoned"
	EffectStunned  EffectType = "stunned"
)

// ParseEffectType converts a YAML or save-file effect name to an EffectType
func ParseEffectType(s string) (EffectType, bool) {
	switch s {
	case "", "none":
		return EffectNone, true
	case "burning", "Burning":
		return EffectBurning, true
	case "poisoned", "Poisoned":
		return EffectPoisoned, true
	case "stunned", "Stunned":
		return EffectStunned, true
	default:
		return EffectNone, false
	}
}

// Spell is a castable spell
type Spell struct {
	Name           string
	Description    string
	Damage         int
	ManaCost       int
	Effect         EffectType
	EffectDamage   int // per turn, damage-over-time effects only
	EffectDuration int // turns
}

// IsDamageOverTime returns true for Burning and Poisoned spells
func (s *Spell) IsDamageOverTime() bool {
	return s.Effect == EffectBurning || s.Effect == EffectPoisoned
}
