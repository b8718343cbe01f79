package command

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/delver/internal/world"
)

// executeMove walks one room in the named direction
func (c *Command) executeMove(s *Session, direction string) string {
	d, ok := world.ParseDirection(direction)
	if !ok {
		return fmt.Sprintf("'%s' is not a direction. Try north, south, east or west.", direction)
	}
	if _, err := s.Game.Move(d); err != nil {
		return describeError(err)
	}
	return describeRoom(s.Game)
}

// executeRun flees the fight in a random direction
func (c *Command) executeRun(s *Session) string {
	d, err := s.Game.Run()
	if err != nil {
		return describeError(err)
	}
	return fmt.Sprintf("You flee %s!\n\n%s", d, describeRoom(s.Game))
}

// executeDescend takes the stairwell down
func (c *Command) executeDescend(s *Session) string {
	from := s.Game.Pos.Floor
	unlocked := s.Game.Player.Keys.State(from)
	to, err := s.Game.Descend()
	if err != nil {
		return describeError(err)
	}
	msg := fmt.Sprintf("You descend to floor %d.", to.Floor)
	if s.Game.Player.Keys.State(from) != unlocked {
		msg = fmt.Sprintf("The mysterious key turns and crumbles to dust. Floor %d is unlocked for good.\n%s", from, msg)
	}
	return msg + "\n\n" + describeRoom(s.Game)
}

// executeWaypoint manages named teleport destinations
//
//	waypoint                  - list waypoints
//	waypoint add <name>       - remember this room
//	waypoint delete <name>    - forget a waypoint
//	waypoint teleport <name>  - read a scroll and jump there
func (c *Command) executeWaypoint(s *Session) string {
	if len(c.Args) == 0 || strings.ToLower(c.Args[0]) == "view" || strings.ToLower(c.Args[0]) == "list" {
		return describeWaypoints(s)
	}

	sub := strings.ToLower(c.Args[0])
	if len(c.Args) < 2 {
		return fmt.Sprintf("Usage: waypoint %s <name>", sub)
	}
	name := strings.Join(c.Args[1:], " ")

	switch sub {
	case "add", "set":
		if err := s.Game.AddWaypoint(name); err != nil {
			return describeError(err)
		}
		return fmt.Sprintf("Waypoint '%s' set at floor %d (%d, %d).", name, s.Game.Pos.Floor, s.Game.Pos.X, s.Game.Pos.Y)
	case "delete", "remove", "del":
		if err := s.Game.DeleteWaypoint(name); err != nil {
			return describeError(err)
		}
		return fmt.Sprintf("Waypoint '%s' forgotten.", name)
	case "teleport", "tp", "go":
		if _, err := s.Game.Teleport(name); err != nil {
			return describeError(err)
		}
		return fmt.Sprintf("The scroll flares and the world shifts around you.\n\n%s", describeRoom(s.Game))
	}
	return "Usage: waypoint [view|add <name>|delete <name>|teleport <name>]"
}

func describeWaypoints(s *Session) string {
	p := s.Game.Player
	names := p.WaypointNames()
	if len(names) == 0 {
		return fmt.Sprintf("You have no waypoints. Waypoint scrolls: %d", p.WaypointScrolls)
	}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		c := p.Waypoints[name]
		rows = append(rows, []string{name, fmt.Sprintf("%d", c.Floor), fmt.Sprintf("(%d, %d)", c.X, c.Y)})
	}
	return table([]string{"Waypoint", "Floor", "Room"}, rows) + fmt.Sprintf("Waypoint scrolls: %d", p.WaypointScrolls)
}
