package combat

// State is a step of a combat round
type State int

const (
	StateIdle State = iota
	StateSelectingTarget
	StatePlayerAction
	StateStatusEffects
	StateEnemyAction
	StateReward
	StateDefeat
)

// String returns the string representation of a State
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelectingTarget:
		return "selecting target"
	case StatePlayerAction:
		return "player action"
	case StateStatusEffects:
		return "status effects"
	case StateEnemyAction:
		return "enemy action"
	case StateReward:
		return "reward"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Loot is what a defeated enemy yields
type Loot struct {
	Gold           int
	KeyFloor       int
	KeyGranted     bool
	KeyAlreadyHeld bool
	XP             int
	LevelsGained   int
	NewEntry       bool // first defeat of this kind, added to the bestiary
}

// Outcome reports everything that happened in one round
type Outcome struct {
	Target         string
	DamageDealt    int
	Critical       bool
	SpellCast      string
	TargetDefeated bool
	PlayerDefeated bool
	Loot           Loot
	StatusDamage   int
	EnemyHits      []int
	EnemyStunned   bool
	WeaponBroke    bool
	ArmorBroke     bool
	State          State
}

// Ongoing reports whether the fight continues into another round
func (o Outcome) Ongoing() bool {
	return o.State == StateEnemyAction
}

// DamageTaken is the total damage the player took this round
func (o Outcome) DamageTaken() int {
	total := 0
	for _, hit := range o.EnemyHits {
		total += hit
	}
	return total
}

// Status is the state a room's fight starts its next round in
func Status(enemies int) State {
	switch {
	case enemies == 0:
		return StateIdle
	case enemies > 1:
		return StateSelectingTarget
	default:
		return StatePlayerAction
	}
}
