// balance is a Monte Carlo simulator for testing game balance in delver.
//
// Usage:
//
//	balance [command] [options]
//
// Commands:
//
//	combat     - Simulate one encounter many times
//	distances  - Test player performance as rooms get further from the start
//	leveling   - Test how many fights it takes to reach a level
//	spells     - Compare every spell against the same encounter
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/utilities/balance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "combat":
		runCombatSim()
	case "distances":
		runDistanceSim()
	case "leveling":
		runLevelingSim()
	case "spells":
		runSpellSim()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Delver Balance Simulator

A Monte Carlo simulator for testing game balance.

Usage: balance <command> [options]

Commands:
  combat     Simulate one encounter many times
  distances  Test player performance as rooms get further from the start
  leveling   Test how many fights it takes to reach a level
  spells     Compare every spell against the same encounter

Examples:
  balance combat -encounter=boss -distance=12 -generated
  balance distances -start=0 -end=100 -step=10 -iterations=5000
  balance leveling -target-level=5 -distance=8
  balance spells -encounter=swarm -distance=4

Use "balance <command> -h" for more information about a command.`)
}

// common holds the flags every command shares
type common struct {
	hp, stamina, mana *int
	generated         *bool
	seed              *int64
	mobs, spellsFile  *string
	iterations        *int
}

func addCommon(fs *flag.FlagSet, iterations int) *common {
	def := player.DefaultOptions()
	return &common{
		hp:         fs.Int("player-hp", def.HP, "Player health"),
		stamina:    fs.Int("player-stamina", def.Stamina, "Player stamina"),
		mana:       fs.Int("player-mana", def.Mana, "Player mana"),
		generated:  fs.Bool("generated", false, "Roll weapon and armor for the distance instead of the starter sword"),
		seed:       fs.Int64("seed", 0, "Random seed (default: current time)"),
		mobs:       fs.String("mobs", "", "Path to mobs YAML file (default: built-in)"),
		spellsFile: fs.String("spells", "", "Path to spells YAML file (default: built-in)"),
		iterations: fs.Int("iterations", iterations, "Number of simulations to run"),
	}
}

func (c *common) loadout() balance.Loadout {
	return balance.Loadout{
		Options:   player.Options{HP: *c.hp, Stamina: *c.stamina, Mana: *c.mana},
		Generated: *c.generated,
	}
}

func (c *common) simulator() *balance.Simulator {
	roster, err := npc.LoadRoster(*c.mobs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mobs: %v\n", err)
		os.Exit(1)
	}
	registry, err := spells.LoadRegistry(*c.spellsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading spells: %v\n", err)
		os.Exit(1)
	}
	seed := *c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return balance.NewSimulator(seed, roster, registry, combat.DefaultConfig())
}

func parseEncounter(s string) balance.Encounter {
	e, ok := balance.ParseEncounter(s)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown encounter %q (regular, swarm or boss)\n", s)
		os.Exit(1)
	}
	return e
}

func runCombatSim() {
	fs := flag.NewFlagSet("combat", flag.ExitOnError)
	c := addCommon(fs, 10000)
	encounter := fs.String("encounter", "regular", "Encounter: regular, swarm or boss")
	distance := fs.Int("distance", 0, "Room distance from the start (|x|+|y|)")
	fs.Parse(os.Args[2:])

	l := c.loadout()
	fmt.Println("=== Combat Simulation ===")
	fmt.Println()
	fmt.Printf("Player: %d HP, %d Stamina, %d Mana, generated gear: %v\n", l.Options.HP, l.Options.Stamina, l.Options.Mana, l.Generated)
	fmt.Printf("Encounter: %s at distance %d\n", *encounter, *distance)
	fmt.Printf("Iterations: %d\n", *c.iterations)
	fmt.Println()

	result := c.simulator().RunSimulation(l, parseEncounter(*encounter), *distance, *c.iterations)
	printSimulationResult(result)
}

func runDistanceSim() {
	fs := flag.NewFlagSet("distances", flag.ExitOnError)
	c := addCommon(fs, 5000)
	encounter := fs.String("encounter", "regular", "Encounter: regular, swarm or boss")
	start := fs.Int("start", 0, "Starting distance")
	end := fs.Int("end", 100, "Ending distance")
	step := fs.Int("step", 10, "Distance step")
	fs.Parse(os.Args[2:])

	if *step <= 0 {
		fmt.Fprintln(os.Stderr, "step must be positive")
		os.Exit(1)
	}
	distances := make([]int, 0)
	for d := *start; d <= *end; d += *step {
		distances = append(distances, d)
	}

	fmt.Println("=== Distance Scaling Simulation ===")
	fmt.Println()
	fmt.Printf("Testing %s encounters at distances %d-%d (step %d), %d iterations each\n",
		*encounter, *start, *end, *step, *c.iterations)
	fmt.Println()

	results := c.simulator().RunDistanceSweep(c.loadout(), parseEncounter(*encounter), distances, *c.iterations)

	fmt.Println("Distance | Win Rate | Avg Rounds | Avg HP Left | Avg Damage Taken | Weapon Breaks")
	fmt.Println("---------+----------+------------+-------------+------------------+--------------")
	for _, r := range results {
		fmt.Printf("%8d | %7.1f%% | %10.1f | %11.1f | %16.1f | %11.1f%%\n",
			r.Distance, r.WinRate, r.AvgRounds, r.AvgPlayerHPLeft, r.AvgDamageTaken, r.WeaponBreakRate)
	}
}

func runLevelingSim() {
	fs := flag.NewFlagSet("leveling", flag.ExitOnError)
	c := addCommon(fs, 1000)
	distance := fs.Int("distance", 8, "Room distance the player farms at")
	target := fs.Int("target-level", 5, "Level to reach")
	maxFights := fs.Int("max-fights", 2000, "Give up after this many fights")
	fs.Parse(os.Args[2:])

	fmt.Println("=== Leveling Simulation ===")
	fmt.Println()
	fmt.Printf("Farming regular enemies at distance %d until level %d (%d runs, max %d fights)\n",
		*distance, *target, *c.iterations, *maxFights)
	fmt.Println()

	r := c.simulator().RunLevelingSim(c.loadout(), *distance, *target, *maxFights, *c.iterations)

	fmt.Printf("Runs reaching level %d: %d/%d\n", r.TargetLevel, r.Reached, r.Runs)
	fmt.Printf("Avg fights to level:    %.1f\n", r.AvgFights)
	fmt.Printf("Avg deaths per run:     %.2f\n", r.AvgDeaths)
	fmt.Printf("Avg gold per run:       %.1f\n", r.AvgGold)
}

func runSpellSim() {
	fs := flag.NewFlagSet("spells", flag.ExitOnError)
	c := addCommon(fs, 5000)
	encounter := fs.String("encounter", "regular", "Encounter: regular, swarm or boss")
	distance := fs.Int("distance", 0, "Room distance from the start (|x|+|y|)")
	fs.Parse(os.Args[2:])

	fmt.Println("=== Spell Comparison ===")
	fmt.Println()
	fmt.Printf("Each spell cast every round against %s encounters at distance %d, %d iterations each\n",
		*encounter, *distance, *c.iterations)
	fmt.Println("Out of mana, the player fights on with fists.")
	fmt.Println()

	results := c.simulator().RunSpellComparison(c.loadout(), parseEncounter(*encounter), *distance, *c.iterations)

	fmt.Println("Spell           | Win Rate | Avg Rounds | Avg Damage Dealt | Avg Damage Taken")
	fmt.Println("----------------+----------+------------+------------------+-----------------")
	for _, r := range results {
		fmt.Printf("%-15s | %7.1f%% | %10.1f | %16.1f | %16.1f\n",
			r.Label, r.WinRate, r.AvgRounds, r.AvgDamageDealt, r.AvgDamageTaken)
	}
}

func printSimulationResult(r balance.SimulationResult) {
	fmt.Println("=== Results ===")
	fmt.Printf("Player Wins:      %d/%d (%.1f%%)\n", r.PlayerWins, r.Simulations, r.WinRate)
	fmt.Printf("Enemy Wins:       %d\n", r.EnemyWins)
	if r.Stalemates > 0 {
		fmt.Printf("Stalemates:       %d\n", r.Stalemates)
	}
	fmt.Printf("Avg Rounds:       %.1f (min %d, max %d)\n", r.AvgRounds, r.MinRounds, r.MaxRounds)
	fmt.Printf("Avg HP Left:      %.1f (when player wins)\n", r.AvgPlayerHPLeft)
	fmt.Printf("Avg Damage Dealt: %.1f\n", r.AvgDamageDealt)
	fmt.Printf("Avg Damage Taken: %.1f\n", r.AvgDamageTaken)
	fmt.Printf("Weapon Breaks:    %.1f%% of fights\n", r.WeaponBreakRate)
}
