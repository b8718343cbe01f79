package game

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/world"
)

// RunCost is the stamina spent fleeing a fight
const RunCost = 10

// Move walks one room in direction d. A living enemy that is neither a
// boss nor the training dummy blocks the way.
func (s *State) Move(d world.Direction) (*world.Room, error) {
	if blocker := s.Room().Blocker(); blocker != nil {
		return nil, fmt.Errorf("the %s blocks your path: %w", blocker.Name, gameerr.ErrBlocked)
	}
	s.Player.Stats.RecordMove()
	return s.enter(s.Pos.Step(d)), nil
}

// Run flees the current fight in a random direction. Fleeing a Baby
// Dragon costs nothing; anything else costs RunCost stamina.
func (s *State) Run() (world.Direction, error) {
	room := s.Room()
	if !room.HasEnemies() {
		return 0, fmt.Errorf("nothing to run from: %w", gameerr.ErrNothingHere)
	}
	free := false
	for _, e := range room.Enemies {
		if e.Name == npc.BabyDragon.String() {
			free = true
			break
		}
	}
	if !free {
		if err := s.Player.SpendStamina(RunCost); err != nil {
			return 0, err
		}
	}

	d := world.Directions[s.r.Pick(len(world.Directions))]
	s.Player.Stats.RecordMove()
	s.enter(s.Pos.Step(d))
	return d, nil
}

// Descend takes the stairwell to the next floor. The first descent
// consumes the floor key and unlocks the floor for good.
func (s *State) Descend() (world.Coord, error) {
	if !s.Room().RequiresKey() {
		return s.Pos, fmt.Errorf("no stairwell here: %w", gameerr.ErrNothingHere)
	}

	floor := s.Pos.Floor
	switch s.Player.Keys.State(floor) {
	case player.KeyUnlocked:
	case player.KeyHeld:
		s.Player.Keys.Consume(floor)
		cleared := s.Tower.ClearKeyPickups(floor)
		logger.Info("floor unlocked", "floor", floor, "keys_cleared", cleared)
	default:
		return s.Pos, fmt.Errorf("the stairwell needs the floor %d key: %w", floor, gameerr.ErrInsufficientResource)
	}

	s.Player.Stats.RecordMove()
	s.enter(world.Coord{Floor: floor + 1})
	return s.Pos, nil
}

// AddWaypoint remembers the current room under name
func (s *State) AddWaypoint(name string) error {
	return s.Player.AddWaypoint(name, s.Pos)
}

// DeleteWaypoint forgets a waypoint
func (s *State) DeleteWaypoint(name string) error {
	return s.Player.DeleteWaypoint(name)
}

// Teleport reads a waypoint scroll and jumps to the named waypoint
func (s *State) Teleport(name string) (world.Coord, error) {
	dest, ok := s.Player.Waypoints[name]
	if !ok {
		return s.Pos, fmt.Errorf("no waypoint %q: %w", name, gameerr.ErrInvalidSelection)
	}
	if err := s.Player.SpendWaypointScroll(); err != nil {
		return s.Pos, err
	}
	s.enter(dest)
	logger.Debug("teleported", "waypoint", name, "floor", dest.Floor, "x", dest.X, "y", dest.Y)
	return dest, nil
}
