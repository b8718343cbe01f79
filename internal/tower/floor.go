package tower

import (
	"github.com/lawnchairsociety/delver/internal/world"
)

// Floor holds the generated rooms of one floor, keyed by "x,y"
type Floor struct {
	Number int
	rooms  map[string]*world.Room
}

// NewFloor creates an empty floor
func NewFloor(number int) *Floor {
	return &Floor{Number: number, rooms: make(map[string]*world.Room)}
}

// Room returns the room at key, or nil
func (f *Floor) Room(key string) *world.Room {
	return f.rooms[key]
}

// SetRoom stores a room at key
func (f *Floor) SetRoom(key string, room *world.Room) {
	f.rooms[key] = room
}

// Rooms returns a copy of the key-to-room map
func (f *Floor) Rooms() map[string]*world.Room {
	rooms := make(map[string]*world.Room, len(f.rooms))
	for k, r := range f.rooms {
		rooms[k] = r
	}
	return rooms
}

// RoomCount returns the number of generated rooms on this floor
func (f *Floor) RoomCount() int {
	return len(f.rooms)
}
