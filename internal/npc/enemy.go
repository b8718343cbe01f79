package npc

import "github.com/lawnchairsociety/delver/internal/spells"

// DamageOverTime is a Burning or Poisoned effect
type DamageOverTime struct {
	Damage int
	Turns  int
}

// StatusEffects holds the transient effects on an enemy
type StatusEffects struct {
	Burning  *DamageOverTime
	Poisoned *DamageOverTime
	Stunned  int
}

// Enemy is a combat target
type Enemy struct {
	Name            string
	HP              int
	BaseAttack      int
	ArmorPierce     int
	IsBoss          bool
	IsTrainingDummy bool
	ExtraTurns      int
	SwarmID         int
	Effects         StatusEffects
}

// IsAlive reports whether the enemy still stands. Training dummies never fall.
func (e *Enemy) IsAlive() bool {
	return e.IsTrainingDummy || e.HP > 0
}

// TakeDamage subtracts damage from hp and returns the amount dealt.
// Training dummies absorb hits without losing hp.
func (e *Enemy) TakeDamage(damage int) int {
	if damage < 0 {
		damage = 0
	}
	if e.IsTrainingDummy {
		return damage
	}
	e.HP -= damage
	return damage
}

// Attacks is how many times the enemy strikes per round
func (e *Enemy) Attacks() int {
	if e.IsTrainingDummy {
		return 0
	}
	return max(1, e.ExtraTurns)
}

// BlocksPassage reports whether the enemy stops the player leaving the room
func (e *Enemy) BlocksPassage() bool {
	return e.IsAlive() && !e.IsBoss && !e.IsTrainingDummy
}

// Afflict applies a spell's status effect, replacing any effect of the same kind
func (e *Enemy) Afflict(s *spells.Spell) {
	switch s.Effect {
	case spells.EffectBurning:
		e.Effects.Burning = &DamageOverTime{Damage: s.EffectDamage, Turns: s.EffectDuration}
	case spells.EffectPoisoned:
		e.Effects.Poisoned = &DamageOverTime{Damage: s.EffectDamage, Turns: s.EffectDuration}
	case spells.EffectStunned:
		e.Effects.Stunned = s.EffectDuration
	}
}

// TickDamageOverTime applies Burning then Poisoned, decrements both and
// clears any that ran out. Returns the total damage applied.
func (e *Enemy) TickDamageOverTime() int {
	total := 0
	for _, slot := range []**DamageOverTime{&e.Effects.Burning, &e.Effects.Poisoned} {
		dot := *slot
		if dot == nil {
			continue
		}
		total += e.TakeDamage(dot.Damage)
		dot.Turns--
		if dot.Turns <= 0 {
			*slot = nil
		}
	}
	return total
}

// ConsumeStun reports whether the enemy loses this turn, using up one turn of stun
func (e *Enemy) ConsumeStun() bool {
	if e.Effects.Stunned <= 0 {
		return false
	}
	e.Effects.Stunned--
	return true
}
