package command

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/lawnchairsociety/delver/internal/game"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/save"
)

func (c *Command) slotName() string {
	if len(c.Args) == 0 {
		return save.DefaultSlot
	}
	return c.Args[0]
}

// executeSave writes the whole game to a slot
func (c *Command) executeSave(s *Session) string {
	if s.Store == nil {
		return "Saving is not available."
	}
	name := c.slotName()
	data, err := save.Encode(save.Game{Tower: s.Game.Tower, Player: s.Game.Player, Pos: s.Game.Pos})
	if err != nil {
		logger.Error("encode failed", "slot", name, "error", err)
		return describeError(err)
	}
	if err := s.Store.Save(name, data); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("Game saved to '%s' (%d rooms).", name, s.Game.Tower.RoomCount())
}

// executeLoad replaces the running game with a saved one. The current game
// is untouched when the slot cannot be read.
func (c *Command) executeLoad(s *Session) string {
	if s.Store == nil {
		return "Loading is not available."
	}
	name := c.slotName()
	data, err := s.Store.Load(name)
	if err != nil {
		return describeError(err)
	}
	g, err := save.Decode(data, s.Game.Tower.Generator())
	if err != nil {
		logger.Warning("load failed", "slot", name, "error", err)
		return describeError(err)
	}
	s.Game = game.Restore(g.Tower, g.Player, g.Pos, s.Resolver, s.Registry, s.Options)
	logger.Info("game loaded", "slot", name, "floor", g.Pos.Floor)
	return fmt.Sprintf("Loaded '%s'.\n\n%s", name, describeRoom(s.Game))
}

func (c *Command) executeListSaves(s *Session) string {
	if s.Store == nil {
		return "Saving is not available."
	}
	slots, err := s.Store.List()
	if err != nil {
		return describeError(err)
	}
	if len(slots) == 0 {
		return "No saved games."
	}
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []string{slot.Name, humanize.Bytes(uint64(slot.Size)), humanize.Time(slot.SavedAt)})
	}
	return table([]string{"Slot", "Size", "Saved"}, rows)
}

func (c *Command) executeDeleteSave(s *Session) string {
	if s.Store == nil {
		return "Saving is not available."
	}
	if err := c.RequireArgs(1, "Usage: delete_save <name>"); err != nil {
		return err.Error()
	}
	if err := s.Store.Delete(c.Args[0]); err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("Deleted save '%s'.", c.Args[0])
}
