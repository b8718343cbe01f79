// Package command is the line-based front end of the game: it parses what
// the player types, runs it against the game state and renders the result.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/game"
	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/help"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/save"
	"github.com/lawnchairsociety/delver/internal/spells"
)

// Command is one parsed line of input
type Command struct {
	Name string
	Args []string
}

// Session is everything a command can act on
type Session struct {
	Game     *game.State
	Store    save.Store
	Resolver *combat.Resolver
	Registry *spells.Registry
	Options  player.Options
	Help     *help.Help

	// Quit is set once the player asks to leave
	Quit bool
}

func (s *Session) helpTopics() *help.Help {
	if s.Help == nil {
		s.Help = help.Default()
	}
	return s.Help
}

// RequireArgs checks if the command has at least the minimum number of arguments
// Returns an error with the usage message if not enough arguments are provided
func (c *Command) RequireArgs(min int, usage string) error {
	if len(c.Args) < min {
		return errors.New(usage)
	}
	return nil
}

// GetItemName joins all arguments into a single name (for multi-word names)
func (c *Command) GetItemName() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits a line into a lower-cased command name and its arguments
func ParseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Name: "", Args: []string{}}
	}

	return &Command{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

// parseIndex reads a 1-based number typed by the player as a 0-based index
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a number from the list: %w", s, gameerr.ErrInvalidSelection)
	}
	return n - 1, nil
}

// Execute runs the command and returns what to show the player
func (c *Command) Execute(s *Session) string {
	if c.Name == "" {
		return ""
	}
	if !s.Game.Player.IsAlive() {
		switch c.Name {
		case "restart", "load", "saves", "help", "quit", "exit", "q":
		default:
			return "You have been defeated. Type 'restart' to begin again, or 'load' to resume a save."
		}
	}

	switch c.Name {
	case "look", "l":
		return describeRoom(s.Game)
	case "north", "n":
		return c.executeMove(s, "north")
	case "south", "s":
		return c.executeMove(s, "south")
	case "east", "e":
		return c.executeMove(s, "east")
	case "west", "w":
		return c.executeMove(s, "west")
	case "go", "move":
		if err := c.RequireArgs(1, "Usage: go <north|south|east|west>"); err != nil {
			return err.Error()
		}
		return c.executeMove(s, c.Args[0])
	case "run", "flee":
		return c.executeRun(s)
	case "descend", "down":
		return c.executeDescend(s)
	case "waypoint", "wp":
		return c.executeWaypoint(s)

	case "attack", "a":
		return c.executeAttack(s)
	case "fists":
		s.Game.SwitchToFists()
		return "You raise your fists."

	case "take", "get":
		return c.executeTake(s)
	case "take_key":
		return c.executeTakeKey(s)
	case "drop_key":
		return c.executeDropKey(s)
	case "drop":
		return c.executeDrop(s)
	case "equip", "wear":
		return c.executeEquip(s)
	case "switch", "wield":
		return c.executeSwitch(s)
	case "absorb":
		return c.executeAbsorb(s)
	case "drink", "quaff":
		return c.executeDrink(s)
	case "learn":
		return c.executeLearn(s)
	case "inventory", "inv", "i":
		return describeInventory(s.Game.Player)

	case "shop":
		return c.executeShop(s)
	case "buy":
		return c.executeBuy(s)
	case "repair":
		return c.executeRepair(s)
	case "loot":
		return c.executeLoot(s)
	case "open":
		return c.executeOpen(s)

	case "stats":
		return describeStats(s.Game.Player)
	case "bestiary":
		return describeBestiary(s.Game.Player)
	case "level":
		return describeLevel(s.Game.Player)
	case "spells":
		return describeSpells(s.Game)

	case "save":
		return c.executeSave(s)
	case "load":
		return c.executeLoad(s)
	case "saves":
		return c.executeListSaves(s)
	case "delete_save":
		return c.executeDeleteSave(s)

	case "help", "?":
		return s.helpTopics().GetHelpText(c.GetItemName())
	case "restart":
		s.Game.Restart()
		return "A new delve begins.\n\n" + describeRoom(s.Game)
	case "quit", "exit", "q":
		s.Quit = true
		return "Farewell, delver."
	}
	return fmt.Sprintf("Unknown command: %s.", c.Name)
}
