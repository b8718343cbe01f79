// Package game holds the running game: the tower, the player and where the
// player stands. Every operation validates its inputs before it mutates
// anything, so a returned error always leaves the state as it was.
package game

import (
	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Start is where every new game begins
var Start = world.Coord{Floor: 1, X: 0, Y: 0}

// State is a game in progress
type State struct {
	Tower  *tower.Tower
	Player *player.Player
	Pos    world.Coord

	r      *stats.Roller
	combat *combat.Resolver
	spells *spells.Registry
	opts   player.Options
}

// NewState starts a fresh game in t with a new player built from opts
func NewState(t *tower.Tower, res *combat.Resolver, registry *spells.Registry, opts player.Options) *State {
	s := &State{
		Tower:  t,
		Player: player.New(opts),
		Pos:    Start,
		r:      t.Generator().Roller(),
		combat: res,
		spells: registry,
		opts:   opts,
	}
	s.enter(Start)
	return s
}

// Restore resumes a loaded game. The caller supplies the decoded tower,
// player and position.
func Restore(t *tower.Tower, p *player.Player, pos world.Coord, res *combat.Resolver, registry *spells.Registry, opts player.Options) *State {
	s := &State{
		Tower:  t,
		Player: p,
		Pos:    pos,
		r:      t.Generator().Roller(),
		combat: res,
		spells: registry,
		opts:   opts,
	}
	s.enter(pos)
	return s
}

// Room returns the room the player stands in
func (s *State) Room() *world.Room {
	return s.Tower.GetRoom(s.Pos, s.Player.Spells)
}

// Spells returns the spell registry the game casts from
func (s *State) Spells() *spells.Registry {
	return s.spells
}

// Restart throws the current run away and begins again at Start
func (s *State) Restart() {
	s.Tower = tower.NewTower(s.Tower.Generator())
	s.Player = player.New(s.opts)
	s.Pos = Start
	s.enter(Start)
	logger.Info("game restarted")
}

// enter moves the player to c, generating the room on first visit
func (s *State) enter(c world.Coord) *world.Room {
	room, created := s.Tower.Visit(c, s.Player.Spells)
	if created {
		s.Player.Stats.RecordRoomExplored()
	}
	s.Player.Stats.RecordFloorVisited(c.Floor)
	s.Pos = c
	return room
}
