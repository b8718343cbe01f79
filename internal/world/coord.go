package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord addresses a room. Floors are independent grids.
type Coord struct {
	Floor int
	X     int
	Y     int
}

// Key returns the "x,y" form rooms are keyed by within a floor
func (c Coord) Key() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// String returns a human-readable form
func (c Coord) String() string {
	return fmt.Sprintf("floor %d (%d, %d)", c.Floor, c.X, c.Y)
}

// ParseKey parses an "x,y" room key on the given floor
func ParseKey(floor int, key string) (Coord, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Coord{}, fmt.Errorf("room key %q is not x,y", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("room key %q: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("room key %q: %w", key, err)
	}
	return Coord{Floor: floor, X: x, Y: y}, nil
}

// Direction is a compass move between rooms
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction, in the order random moves pick from
var Directions = []Direction{North, South, East, West}

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names and single letters
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(s) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return North, false
	}
}

// Step returns the neighbouring coordinate in direction d
func (c Coord) Step(d Direction) Coord {
	switch d {
	case North:
		c.Y++
	case South:
		c.Y--
	case East:
		c.X++
	case West:
		c.X--
	}
	return c
}
