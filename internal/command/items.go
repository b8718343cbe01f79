package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/delver/internal/game"
)

// executeTake picks up one ground item by number, or everything
func (c *Command) executeTake(s *Session) string {
	if err := c.RequireArgs(1, "Usage: take <number|all>"); err != nil {
		return err.Error()
	}
	if strings.EqualFold(c.Args[0], "all") {
		taken, err := s.Game.TakeAll()
		if err != nil {
			return describeError(err)
		}
		if len(taken) == 0 {
			return "You can't carry any of it."
		}
		msg := fmt.Sprintf("You take: %s.", strings.Join(taken, ", "))
		if left := s.Game.Ground(); len(left) > 0 {
			msg += fmt.Sprintf("\nLeft behind: %s.", strings.Join(left, ", "))
		}
		return msg
	}

	i, err := parseIndex(c.Args[0])
	if err != nil {
		return describeError(err)
	}
	name, err := s.Game.Take(i)
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You take the %s.", name)
}

func (c *Command) executeTakeKey(s *Session) string {
	if err := s.Game.TakeKey(); err != nil {
		return describeError(err)
	}
	return "You pocket the mysterious key."
}

func (c *Command) executeDropKey(s *Session) string {
	if err := s.Game.DropKey(); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You leave the floor %d key on the ground.", s.Game.Pos.Floor)
}

// executeDrop leaves a carried item here. Weapons are numbered first, then armor.
func (c *Command) executeDrop(s *Session) string {
	if err := c.RequireArgs(1, "Usage: drop <number>"); err != nil {
		return err.Error()
	}
	i, err := parseIndex(c.Args[0])
	if err != nil {
		return describeError(err)
	}
	name, err := s.Game.Drop(i)
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You drop the %s.", name)
}

// executeEquip wears armor by its number in the armor bag
func (c *Command) executeEquip(s *Session) string {
	if err := c.RequireArgs(1, "Usage: equip <armor number>"); err != nil {
		return err.Error()
	}
	i, err := parseIndex(c.Args[0])
	if err != nil {
		return describeError(err)
	}
	if err := s.Game.Equip(i); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You put on the %s.", s.Game.Player.Armor().Name)
}

// executeSwitch wields a weapon by number, or "fists"
func (c *Command) executeSwitch(s *Session) string {
	if err := c.RequireArgs(1, "Usage: switch <weapon number|fists>"); err != nil {
		return err.Error()
	}
	if strings.EqualFold(c.Args[0], "fists") {
		s.Game.SwitchToFists()
		return "You raise your fists."
	}
	i, err := parseIndex(c.Args[0])
	if err != nil {
		return describeError(err)
	}
	if err := s.Game.Switch(i); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You wield the %s.", s.Game.Player.Weapon().Name)
}

func (c *Command) executeAbsorb(s *Session) string {
	crystal, err := s.Game.Absorb()
	if err != nil {
		return describeError(err)
	}
	p := s.Game.Player
	return fmt.Sprintf("The %s crystal's power flows into you. HP %d/%d  Stamina %d/%d  Mana %d/%d",
		strings.ReplaceAll(crystal.String(), "_", " and "), p.HP, p.MaxHP, p.Stamina, p.MaxStamina, p.Mana, p.MaxMana)
}

// executeDrink drinks a potion: health (the default), stamina or mana
func (c *Command) executeDrink(s *Session) string {
	kind := game.HealthPotion
	if len(c.Args) > 0 {
		k, ok := game.ParsePotionKind(strings.ToLower(c.Args[0]))
		if !ok {
			return "Usage: drink [health|stamina|mana]"
		}
		kind = k
	}
	restored, err := s.Game.UsePotion(kind)
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You drink a %s potion and recover %d.", kind, restored)
}

// executeLearn reads a spell scroll
func (c *Command) executeLearn(s *Session) string {
	if err := c.RequireArgs(1, "Usage: learn <spell>"); err != nil {
		return err.Error()
	}
	name := title(c.GetItemName())
	if err := s.Game.LearnSpell(name); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You read the scroll and learn %s. It is spell %d in your book.", name, len(s.Game.Player.Spells))
}
