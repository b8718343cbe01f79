package tower

import (
	"sort"

	"github.com/lawnchairsociety/delver/internal/world"
)

// Tower is the world store: every room ever generated, by floor.
// Rooms are generated on first visit and never regenerated or removed.
type Tower struct {
	floors map[int]*Floor
	gen    *Generator
}

// NewTower creates an empty tower that generates rooms with gen
func NewTower(gen *Generator) *Tower {
	return &Tower{floors: make(map[int]*Floor), gen: gen}
}

// Generator returns the room generator
func (t *Tower) Generator() *Generator {
	return t.gen
}

// GetRoom returns the room at c, generating it if this is the first visit
func (t *Tower) GetRoom(c world.Coord, learned []string) *world.Room {
	room, _ := t.Visit(c, learned)
	return room
}

// Visit is GetRoom that also reports whether the room was just generated
func (t *Tower) Visit(c world.Coord, learned []string) (*world.Room, bool) {
	floor := t.floor(c.Floor)
	if room := floor.Room(c.Key()); room != nil {
		return room, false
	}
	room := t.gen.GenerateRoom(c, learned)
	floor.SetRoom(c.Key(), room)
	return room, true
}

// Peek returns the room at c without generating it
func (t *Tower) Peek(c world.Coord) *world.Room {
	floor, ok := t.floors[c.Floor]
	if !ok {
		return nil
	}
	return floor.Room(c.Key())
}

// SetRoom stores a room directly (used when loading a save)
func (t *Tower) SetRoom(c world.Coord, room *world.Room) {
	t.floor(c.Floor).SetRoom(c.Key(), room)
}

// Floor returns a floor if any room on it was generated
func (t *Tower) Floor(number int) (*Floor, bool) {
	f, ok := t.floors[number]
	return f, ok
}

// FloorNumbers returns the generated floor numbers in ascending order
func (t *Tower) FloorNumbers() []int {
	nums := make([]int, 0, len(t.floors))
	for n := range t.floors {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// RoomCount returns the total number of generated rooms
func (t *Tower) RoomCount() int {
	total := 0
	for _, f := range t.floors {
		total += f.RoomCount()
	}
	return total
}

// ClearKeyPickups removes every ground key for a floor once it is unlocked
func (t *Tower) ClearKeyPickups(number int) int {
	f, ok := t.floors[number]
	if !ok {
		return 0
	}
	cleared := 0
	for _, room := range f.rooms {
		if room.Key != nil && room.Key.Floor == number {
			room.Key = nil
			cleared++
		}
	}
	return cleared
}

func (t *Tower) floor(number int) *Floor {
	f, ok := t.floors[number]
	if !ok {
		f = NewFloor(number)
		t.floors[number] = f
	}
	return f
}
