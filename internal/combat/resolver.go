// Package combat resolves one round of a fight between the player and the
// enemies of a room.
//
// A round walks the states SelectingTarget, PlayerAction, StatusEffects and
// EnemyAction in that order and stops early in Reward (the target died) or
// Defeat (the player died). Every input is validated before anything is
// mutated, so a failed round leaves the room and player untouched.
package combat

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Config tunes the parts of combat that are balance knobs
type Config struct {
	FistDamage         int     `yaml:"fist_damage"`
	FistCritChance     float64 `yaml:"fist_crit_chance"`
	FistCritMultiplier float64 `yaml:"fist_crit_multiplier"`
	GoldDrop           string  `yaml:"gold_drop"` // dice notation
}

// DefaultConfig returns the standard combat tuning
func DefaultConfig() Config {
	return Config{
		FistDamage:         3,
		FistCritChance:     items.BaseCritChance,
		FistCritMultiplier: items.BaseCritMultiplier,
		GoldDrop:           "1d11+4",
	}
}

// Action is the player's choice for a round
type Action struct {
	// Target indexes the room's enemies; ignored unless the room holds a swarm
	Target int
	// Spell indexes the learned spells; used only when wielding a spell book
	Spell int
}

// Resolver runs combat rounds
type Resolver struct {
	r      *stats.Roller
	spells *spells.Registry
	cfg    Config
}

// NewResolver creates a combat resolver
func NewResolver(r *stats.Roller, registry *spells.Registry, cfg Config) *Resolver {
	if cfg.FistDamage <= 0 {
		cfg.FistDamage = DefaultConfig().FistDamage
	}
	if !stats.ValidDice(cfg.GoldDrop) {
		cfg.GoldDrop = DefaultConfig().GoldDrop
	}
	return &Resolver{r: r, spells: registry, cfg: cfg}
}

// attack is a validated player action, ready to apply
type attack struct {
	target *npc.Enemy
	weapon *items.Weapon // nil for fists
	spell  *spells.Spell
}

// ResolveAttack plays one full round against the room at c
func (res *Resolver) ResolveAttack(c world.Coord, room *world.Room, p *player.Player, action Action) (Outcome, error) {
	a, err := res.prepare(room, p, action)
	if err != nil {
		return Outcome{State: StateIdle}, err
	}

	out := Outcome{Target: a.target.Name, State: StatePlayerAction}
	res.playerAction(p, a, &out)

	if !a.target.IsAlive() {
		res.defeat(c, room, p, a.target, &out)
		return out, nil
	}

	out.State = StateStatusEffects
	if dot := a.target.TickDamageOverTime(); dot > 0 {
		out.StatusDamage = dot
		p.Stats.RecordDamageDealt(dot)
		if !a.target.IsAlive() {
			res.defeat(c, room, p, a.target, &out)
			return out, nil
		}
	}

	out.State = StateEnemyAction
	res.enemyAction(p, a.target, &out)
	return out, nil
}

func (res *Resolver) prepare(room *world.Room, p *player.Player, action Action) (attack, error) {
	var a attack
	if room == nil || !room.HasEnemies() {
		return a, fmt.Errorf("no enemy to attack: %w", gameerr.ErrNothingHere)
	}

	idx := 0
	if room.IsSwarm() {
		idx = action.Target
	}
	if idx < 0 || idx >= len(room.Enemies) || !room.Enemies[idx].IsAlive() {
		return a, fmt.Errorf("no enemy %d: %w", action.Target+1, gameerr.ErrInvalidSelection)
	}
	a.target = room.Enemies[idx]

	if p.FightingWithFists() {
		return a, nil
	}

	w := p.Weapon()
	if !w.Usable() {
		return a, fmt.Errorf("%s needs repair: %w", w.Name, gameerr.ErrUnusableItem)
	}
	a.weapon = w

	switch {
	case w.Kind == items.SpellBook:
		if action.Spell < 0 || action.Spell >= len(p.Spells) {
			return a, fmt.Errorf("no spell %d: %w", action.Spell+1, gameerr.ErrInvalidSelection)
		}
		spell, ok := res.spells.Get(p.Spells[action.Spell])
		if !ok {
			return a, fmt.Errorf("unknown spell %q: %w", p.Spells[action.Spell], gameerr.ErrInvalidSelection)
		}
		if p.Mana < spell.ManaCost {
			return a, fmt.Errorf("%s needs %d mana: %w", spell.Name, spell.ManaCost, gameerr.ErrInsufficientMana)
		}
		a.spell = spell
	case w.RequiresMana && p.Mana < w.ManaCost:
		return a, fmt.Errorf("%s needs %d mana: %w", w.Name, w.ManaCost, gameerr.ErrInsufficientMana)
	}
	return a, nil
}

func (res *Resolver) playerAction(p *player.Player, a attack, out *Outcome) {
	var damage int
	switch {
	case a.weapon == nil:
		damage = res.cfg.FistDamage
		if res.r.Chance(res.cfg.FistCritChance) {
			damage = int(float64(damage) * res.cfg.FistCritMultiplier)
			out.Critical = true
		}

	case a.spell != nil:
		p.SpendMana(a.spell.ManaCost)
		damage = a.spell.Damage
		a.target.Afflict(a.spell)
		out.SpellCast = a.spell.Name

	default:
		if a.weapon.RequiresMana {
			p.SpendMana(a.weapon.ManaCost)
		}
		damage = a.weapon.Damage
		chance, multiplier := a.weapon.CritProfile()
		if res.r.Chance(chance) {
			damage = int(float64(damage) * multiplier)
			out.Critical = true
		}
		if !a.target.IsTrainingDummy && a.weapon.Wear() {
			p.DestroyWeapon()
			p.Stats.RecordWeaponBroken()
			out.WeaponBroke = true
			logger.Debug("weapon broke", "weapon", a.weapon.Name)
		}
	}

	out.DamageDealt = a.target.TakeDamage(damage)
	p.Stats.RecordAttack(out.DamageDealt, out.Critical)
}

// defeat hands out the rewards for target and removes it from the room
func (res *Resolver) defeat(c world.Coord, room *world.Room, p *player.Player, target *npc.Enemy, out *Outcome) {
	out.State = StateReward
	out.TargetDefeated = true
	out.Loot.NewEntry = p.Discover(target.Name)
	p.Stats.RecordKill(target.IsBoss)

	switch {
	case target.IsBoss:
		out.Loot.KeyFloor = c.Floor
		if p.Keys.Grant(c.Floor) {
			out.Loot.KeyGranted = true
		} else {
			out.Loot.KeyAlreadyHeld = true
		}
		logger.Info("boss defeated", "boss", target.Name, "floor", c.Floor, "key_granted", out.Loot.KeyGranted)
	case !target.IsTrainingDummy:
		out.Loot.Gold = res.r.ParseDice(res.cfg.GoldDrop)
		p.AddMoney(out.Loot.Gold)
		p.Stats.RecordGoldEarned(out.Loot.Gold)
	}

	out.Loot.XP = player.XPReward(target.Name, c.Floor, c.X, c.Y)
	out.Loot.LevelsGained = p.GainXP(out.Loot.XP).LevelsGained

	room.RemoveEnemy(target)
}

func (res *Resolver) enemyAction(p *player.Player, target *npc.Enemy, out *Outcome) {
	attacks := target.Attacks()
	if attacks == 0 {
		return
	}
	if target.ConsumeStun() {
		out.EnemyStunned = true
		return
	}

	for i := 0; i < attacks; i++ {
		damage := target.BaseAttack
		if armor := p.Armor(); armor != nil {
			damage = max(1, damage-armor.Reduction(target.ArmorPierce))
			if armor.Wear() {
				p.DestroyArmor()
				p.Stats.RecordArmorBroken()
				out.ArmorBroke = true
				logger.Debug("armor broke", "armor", armor.Name)
			}
		}

		taken := p.TakeDamage(damage)
		p.Stats.RecordDamageTaken(taken)
		out.EnemyHits = append(out.EnemyHits, taken)

		if !p.IsAlive() {
			out.State = StateDefeat
			out.PlayerDefeated = true
			return
		}
	}
}
