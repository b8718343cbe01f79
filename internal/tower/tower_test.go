package tower

import (
	"testing"

	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

func newTestTower(seed int64) *Tower {
	return NewTower(NewGenerator(stats.NewSeededRoller(seed), npc.DefaultRoster(), spells.DefaultRegistry(), nil))
}

func TestGetRoomIsIdempotent(t *testing.T) {
	tw := newTestTower(5)

	for _, c := range []world.Coord{{Floor: 1, X: 3, Y: -2}, {Floor: 2}, {Floor: 1}} {
		first, created := tw.Visit(c, nil)
		if !created {
			t.Errorf("%v: first visit not reported as created", c)
		}
		second, created := tw.Visit(c, nil)
		if created {
			t.Errorf("%v: second visit regenerated the room", c)
		}
		if first != second {
			t.Errorf("%v: second visit returned a different room", c)
		}
		if tw.GetRoom(c, nil) != first {
			t.Errorf("%v: GetRoom returned a different room", c)
		}
	}

	if tw.RoomCount() != 3 {
		t.Errorf("RoomCount() = %d, want 3", tw.RoomCount())
	}
}

func TestFloorNumbersAndPeek(t *testing.T) {
	tw := newTestTower(1)
	if tw.Peek(world.Coord{Floor: 1}) != nil {
		t.Error("Peek generated a room")
	}
	tw.GetRoom(world.Coord{Floor: 3, X: 1}, nil)
	tw.GetRoom(world.Coord{Floor: 1, X: 1}, nil)

	nums := tw.FloorNumbers()
	if len(nums) != 2 || nums[0] != 1 || nums[1] != 3 {
		t.Errorf("FloorNumbers() = %v, want [1 3]", nums)
	}
	if _, ok := tw.Floor(2); ok {
		t.Error("Floor(2) exists without any visit")
	}
}

func TestSetRoomIsNotRegenerated(t *testing.T) {
	tw := newTestTower(1)
	c := world.Coord{Floor: 1, X: 9, Y: 9}
	custom := world.NewStairwellRoom()
	tw.SetRoom(c, custom)

	if got, created := tw.Visit(c, nil); got != custom || created {
		t.Error("stored room was replaced on visit")
	}
}

func TestClearKeyPickups(t *testing.T) {
	tw := newTestTower(1)
	a := world.NewNormalRoom("a")
	a.Key = &world.KeyPickup{Floor: 2}
	b := world.NewNormalRoom("b")
	b.Key = &world.KeyPickup{Floor: 2}
	other := world.NewNormalRoom("c")
	other.Key = &world.KeyPickup{Floor: 3}

	tw.SetRoom(world.Coord{Floor: 2, X: 1}, a)
	tw.SetRoom(world.Coord{Floor: 2, X: 2}, b)
	tw.SetRoom(world.Coord{Floor: 3, X: 1}, other)

	if n := tw.ClearKeyPickups(2); n != 2 {
		t.Errorf("ClearKeyPickups(2) = %d, want 2", n)
	}
	if a.Key != nil || b.Key != nil {
		t.Error("floor 2 keys still on the ground")
	}
	if other.Key == nil {
		t.Error("floor 3 key was cleared")
	}
	if n := tw.ClearKeyPickups(7); n != 0 {
		t.Errorf("ClearKeyPickups on unknown floor = %d", n)
	}
}
