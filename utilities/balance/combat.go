// Package balance provides Monte Carlo simulation tools for game balance testing.
// Every fight goes through the real combat resolver with content rolled by
// the real factories, so the numbers track the game as it is tuned.
package balance

import (
	"strings"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

// maxRounds stops a fight neither side can finish
const maxRounds = 1000

// Encounter selects what the player fights
type Encounter int

const (
	EncounterRegular Encounter = iota
	EncounterSwarm
	EncounterBoss
)

func (e Encounter) String() string {
	switch e {
	case EncounterSwarm:
		return "swarm"
	case EncounterBoss:
		return "boss"
	default:
		return "regular"
	}
}

// ParseEncounter converts a flag value to an Encounter
func ParseEncounter(s string) (Encounter, bool) {
	switch strings.ToLower(s) {
	case "regular", "enemy", "":
		return EncounterRegular, true
	case "swarm", "spiders":
		return EncounterSwarm, true
	case "boss", "vault":
		return EncounterBoss, true
	}
	return EncounterRegular, false
}

// Loadout describes the player entering each simulated fight
type Loadout struct {
	Options player.Options

	// Generated rolls a weapon and an armor for the fight's distance.
	// Otherwise the player carries the starter sword and no armor.
	Generated bool

	// Spell, when set, arms the player with a spell book and that one spell
	Spell string
}

// CombatResult holds the outcome of a single combat simulation
type CombatResult struct {
	PlayerWon       bool
	Rounds          int
	PlayerHPRemain  int
	PlayerDamageIn  int // Total damage taken by player
	PlayerDamageOut int // Total damage dealt by player, including damage over time
	WeaponBroke     bool
}

// SimulationResult holds aggregated results from many combat simulations
type SimulationResult struct {
	Label           string
	Distance        int
	Simulations     int
	PlayerWins      int
	EnemyWins       int
	Stalemates      int
	WinRate         float64 // percent
	AvgRounds       float64
	AvgPlayerHPLeft float64 // Average HP remaining when player wins
	AvgDamageDealt  float64
	AvgDamageTaken  float64
	WeaponBreakRate float64 // percent of fights where a weapon broke
	MinRounds       int
	MaxRounds       int
}

// Simulator runs fights with one shared random stream
type Simulator struct {
	r        *stats.Roller
	res      *combat.Resolver
	roster   *npc.Roster
	registry *spells.Registry
}

// NewSimulator creates a simulator seeded with seed
func NewSimulator(seed int64, roster *npc.Roster, registry *spells.Registry, cfg combat.Config) *Simulator {
	r := stats.NewSeededRoller(seed)
	return &Simulator{
		r:        r,
		res:      combat.NewResolver(r, registry, cfg),
		roster:   roster,
		registry: registry,
	}
}

// at is the coordinate fights at distance happen on
func at(distance int) world.Coord {
	return world.Coord{Floor: 1, X: distance, Y: 0}
}

// Spawn builds a room holding the encounter at c
func (s *Simulator) Spawn(e Encounter, c world.Coord) *world.Room {
	switch e {
	case EncounterBoss:
		return world.NewVaultRoom(npc.GenerateBoss(s.r, npc.BossForFloor(c.Floor), c.X, c.Y))
	case EncounterSwarm:
		room := world.NewNormalRoom("")
		room.Enemies = npc.GenerateSwarm(s.r, c.X, c.Y)
		return room
	default:
		room := world.NewNormalRoom("")
		room.Enemies = []*npc.Enemy{s.roster.GenerateEnemy(s.r, c.X, c.Y)}
		return room
	}
}

// NewPlayer builds a fresh player carrying the loadout for distance
func (s *Simulator) NewPlayer(l Loadout, distance int) *player.Player {
	p := player.New(l.Options)
	s.arm(p, l, distance)
	return p
}

// arm gives an empty handed player the loadout's weapon and, for a
// generated loadout, armor when none is worn
func (s *Simulator) arm(p *player.Player, l Loadout, distance int) {
	if len(p.Weapons) == 0 {
		switch {
		case l.Spell != "":
			p.AddWeapon(&items.Weapon{Name: "Spell Book", Kind: items.SpellBook, Durability: 1, MaxDurability: 1})
			if !p.KnowsSpell(l.Spell) {
				p.AddSpellScroll(l.Spell)
				p.LearnSpell(l.Spell)
			}
		case l.Generated:
			p.AddWeapon(items.GenerateWeapon(s.r, distance))
		default:
			p.AddWeapon(items.StarterSword())
		}
		p.UsingFists = false
	}
	if l.Generated && p.Armor() == nil {
		p.Armors = p.Armors[:0]
		p.AddArmor(items.GenerateArmor(s.r, distance))
		p.Equip(0)
	}
}

// SimulateCombat fights room at c until one side falls. When the wielded
// weapon can't be used (broken, out of mana, a spell book with no spell)
// the player switches to fists.
func (s *Simulator) SimulateCombat(p *player.Player, room *world.Room, c world.Coord) CombatResult {
	var result CombatResult

	for p.IsAlive() && room.HasEnemies() && result.Rounds < maxRounds {
		out, err := s.res.ResolveAttack(c, room, p, combat.Action{})
		if err != nil {
			if p.FightingWithFists() {
				break
			}
			p.UseFists()
			continue
		}

		result.Rounds++
		result.PlayerDamageOut += out.DamageDealt + out.StatusDamage
		for _, hit := range out.EnemyHits {
			result.PlayerDamageIn += hit
		}
		if out.WeaponBroke {
			result.WeaponBroke = true
		}
	}

	result.PlayerWon = p.IsAlive() && !room.HasEnemies()
	result.PlayerHPRemain = p.HP
	return result
}

// RunSimulation runs iterations fresh fights of the encounter at distance
func (s *Simulator) RunSimulation(l Loadout, e Encounter, distance, iterations int) SimulationResult {
	result := SimulationResult{
		Label:       e.String(),
		Distance:    distance,
		Simulations: iterations,
	}
	if iterations <= 0 {
		return result
	}

	c := at(distance)
	var totalRounds, totalHPLeft, totalDealt, totalTaken, broke int
	for i := 0; i < iterations; i++ {
		p := s.NewPlayer(l, distance)
		r := s.SimulateCombat(p, s.Spawn(e, c), c)

		switch {
		case r.PlayerWon:
			result.PlayerWins++
			totalHPLeft += r.PlayerHPRemain
		case !p.IsAlive():
			result.EnemyWins++
		default:
			result.Stalemates++
		}
		if r.WeaponBroke {
			broke++
		}

		totalRounds += r.Rounds
		totalDealt += r.PlayerDamageOut
		totalTaken += r.PlayerDamageIn
		if i == 0 || r.Rounds < result.MinRounds {
			result.MinRounds = r.Rounds
		}
		if r.Rounds > result.MaxRounds {
			result.MaxRounds = r.Rounds
		}
	}

	n := float64(iterations)
	result.WinRate = float64(result.PlayerWins) / n * 100
	result.AvgRounds = float64(totalRounds) / n
	result.AvgDamageDealt = float64(totalDealt) / n
	result.AvgDamageTaken = float64(totalTaken) / n
	result.WeaponBreakRate = float64(broke) / n * 100
	if result.PlayerWins > 0 {
		result.AvgPlayerHPLeft = float64(totalHPLeft) / float64(result.PlayerWins)
	}
	return result
}

// RunDistanceSweep runs the same encounter at each distance
func (s *Simulator) RunDistanceSweep(l Loadout, e Encounter, distances []int, iterations int) []SimulationResult {
	results := make([]SimulationResult, 0, len(distances))
	for _, d := range distances {
		results = append(results, s.RunSimulation(l, e, d, iterations))
	}
	return results
}
