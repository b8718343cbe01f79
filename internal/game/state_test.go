package game

import (
	"errors"
	"testing"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/npc"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/spells"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/tower"
	"github.com/lawnchairsociety/delver/internal/world"
)

// newTestState builds a game whose randomness comes from src. An empty
// ScriptedSource makes every generated room a plain empty room.
func newTestState(src *stats.ScriptedSource) *State {
	r := stats.NewRoller(src)
	registry := spells.DefaultRegistry()
	gen := tower.NewGenerator(r, npc.DefaultRoster(), registry, nil)
	res := combat.NewResolver(r, registry, combat.DefaultConfig())
	return NewState(tower.NewTower(gen), res, registry, player.DefaultOptions())
}

// place replaces the room the player stands in
func place(s *State, room *world.Room) *world.Room {
	s.Tower.SetRoom(s.Pos, room)
	return room
}

func orc(hp int) *npc.Enemy {
	return &npc.Enemy{Name: "Orc", HP: hp, BaseAttack: 4}
}

func TestNewStateStartsAtTrainingRoom(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})

	if s.Pos != Start {
		t.Errorf("Pos = %v, want %v", s.Pos, Start)
	}
	room := s.Room()
	if len(room.Enemies) != 1 || !room.Enemies[0].IsTrainingDummy {
		t.Errorf("start room enemies = %+v, want the training dummy", room.Enemies)
	}
	if s.Player.Stats.RoomsExplored != 1 {
		t.Errorf("RoomsExplored = %d, want 1", s.Player.Stats.RoomsExplored)
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		enemies []*npc.Enemy
		wantErr error
	}{
		{"empty room", nil, nil},
		{"training dummy", []*npc.Enemy{npc.TrainingDummy()}, nil},
		{"boss", []*npc.Enemy{{Name: "Troll", HP: 60, BaseAttack: 10, IsBoss: true}}, nil},
		{"orc", []*npc.Enemy{orc(10)}, gameerr.ErrBlocked},
		{"swarm", []*npc.Enemy{{Name: "Spider", HP: 6, SwarmID: 1}, {Name: "Spider", HP: 6, SwarmID: 1}}, gameerr.ErrBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(&stats.ScriptedSource{})
			room := world.NewNormalRoom("test")
			room.Enemies = tt.enemies
			place(s, room)

			_, err := s.Move(world.North)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Move error = %v, want %v", err, tt.wantErr)
			}
			want := Start
			if tt.wantErr == nil {
				want = world.Coord{Floor: 1, X: 0, Y: 1}
			}
			if s.Pos != want {
				t.Errorf("Pos = %v, want %v", s.Pos, want)
			}
		})
	}
}

func TestMoveRecordsStatistics(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})

	s.Move(world.East)
	s.Move(world.West)
	s.Move(world.East)

	st := s.Player.Stats
	if st.Moves != 3 {
		t.Errorf("Moves = %d, want 3", st.Moves)
	}
	if st.RoomsExplored != 2 {
		t.Errorf("RoomsExplored = %d, want 2", st.RoomsExplored)
	}
	if s.Tower.RoomCount() != 2 {
		t.Errorf("RoomCount = %d, want 2", s.Tower.RoomCount())
	}
}

func TestRun(t *testing.T) {
	t.Run("nothing to run from", func(t *testing.T) {
		s := newTestState(&stats.ScriptedSource{})
		place(s, world.NewNormalRoom("quiet"))
		if _, err := s.Run(); !errors.Is(err, gameerr.ErrNothingHere) {
			t.Errorf("Run error = %v, want ErrNothingHere", err)
		}
	})

	t.Run("costs stamina", func(t *testing.T) {
		s := newTestState(&stats.ScriptedSource{Ints: []int{2}})
		room := world.NewNormalRoom("test")
		room.Enemies = []*npc.Enemy{orc(10)}
		place(s, room)

		d, err := s.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if d != world.East {
			t.Errorf("direction = %v, want east", d)
		}
		if s.Pos != (world.Coord{Floor: 1, X: 1, Y: 0}) {
			t.Errorf("Pos = %v", s.Pos)
		}
		if s.Player.Stamina != 10 {
			t.Errorf("Stamina = %d, want 10", s.Player.Stamina)
		}
	})

	t.Run("too tired", func(t *testing.T) {
		s := newTestState(&stats.ScriptedSource{})
		room := world.NewNormalRoom("test")
		room.Enemies = []*npc.Enemy{orc(10)}
		place(s, room)
		s.Player.Stamina = 5

		if _, err := s.Run(); !errors.Is(err, gameerr.ErrInsufficientResource) {
			t.Fatalf("Run error = %v, want ErrInsufficientResource", err)
		}
		if s.Pos != Start || s.Player.Stamina != 5 {
			t.Errorf("state changed: pos %v stamina %d", s.Pos, s.Player.Stamina)
		}
	})

	t.Run("baby dragon is free", func(t *testing.T) {
		s := newTestState(&stats.ScriptedSource{Ints: []int{0}})
		place(s, world.NewVaultRoom(&npc.Enemy{Name: "Baby Dragon", HP: 75, BaseAttack: 16, IsBoss: true}))
		s.Player.Stamina = 0

		d, err := s.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		if d != world.North || s.Player.Stamina != 0 {
			t.Errorf("direction %v stamina %d", d, s.Player.Stamina)
		}
	})
}

func TestDescendUnlocksFloorForGood(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})
	place(s, world.NewStairwellRoom())

	if _, err := s.Descend(); !errors.Is(err, gameerr.ErrInsufficientResource) {
		t.Fatalf("Descend without key error = %v, want ErrInsufficientResource", err)
	}
	if s.Pos != Start {
		t.Fatalf("Pos = %v after failed descent", s.Pos)
	}

	spare := world.NewNormalRoom("spare key")
	spare.Key = &world.KeyPickup{Floor: 1}
	spareAt := world.Coord{Floor: 1, X: 5, Y: 5}
	s.Tower.SetRoom(spareAt, spare)

	if err := s.AddWaypoint("stairs"); err != nil {
		t.Fatalf("AddWaypoint: %v", err)
	}
	s.Player.Keys.Grant(1)

	pos, err := s.Descend()
	if err != nil {
		t.Fatalf("Descend: %v", err)
	}
	if pos != (world.Coord{Floor: 2}) {
		t.Errorf("Pos = %v, want floor 2 origin", pos)
	}
	if got := s.Player.Keys.State(1); got != player.KeyUnlocked {
		t.Errorf("floor 1 key state = %v, want unlocked", got)
	}
	if s.Tower.Peek(spareAt).Key != nil {
		t.Error("ground key for an unlocked floor was not cleared")
	}

	if _, err := s.Teleport("stairs"); err != nil {
		t.Fatalf("Teleport: %v", err)
	}
	if s.Player.WaypointScrolls != 0 {
		t.Errorf("WaypointScrolls = %d, want 0", s.Player.WaypointScrolls)
	}
	if _, err := s.Descend(); err != nil {
		t.Errorf("second Descend: %v", err)
	}
	if _, err := s.Teleport("stairs"); !errors.Is(err, gameerr.ErrInsufficientResource) {
		t.Errorf("Teleport without scroll error = %v, want ErrInsufficientResource", err)
	}
}

func TestDescendNeedsStairwell(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})
	s.Player.Keys.Grant(1)
	if _, err := s.Descend(); !errors.Is(err, gameerr.ErrNothingHere) {
		t.Errorf("Descend error = %v, want ErrNothingHere", err)
	}
	if s.Player.Keys.State(1) != player.KeyHeld {
		t.Error("key consumed by a failed descent")
	}
}

func TestWaypoints(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})

	if err := s.AddWaypoint("home"); err != nil {
		t.Fatalf("AddWaypoint: %v", err)
	}
	if err := s.AddWaypoint("home"); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("duplicate AddWaypoint error = %v, want ErrInvalidSelection", err)
	}
	if _, err := s.Teleport("nowhere"); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("Teleport error = %v, want ErrInvalidSelection", err)
	}
	if s.Player.WaypointScrolls != 1 {
		t.Errorf("scroll spent on a failed teleport")
	}
	if err := s.DeleteWaypoint("home"); err != nil {
		t.Errorf("DeleteWaypoint: %v", err)
	}
	if err := s.DeleteWaypoint("home"); !errors.Is(err, gameerr.ErrInvalidSelection) {
		t.Errorf("second DeleteWaypoint error = %v, want ErrInvalidSelection", err)
	}
}

func TestRestart(t *testing.T) {
	s := newTestState(&stats.ScriptedSource{})
	s.Move(world.North)
	s.Move(world.North)
	s.Player.HP = 0
	s.Player.AddMoney(40)

	s.Restart()

	if s.Pos != Start {
		t.Errorf("Pos = %v, want %v", s.Pos, Start)
	}
	if s.Tower.RoomCount() != 1 {
		t.Errorf("RoomCount = %d, want 1", s.Tower.RoomCount())
	}
	if !s.Player.IsAlive() || s.Player.Money != 0 {
		t.Errorf("player not reset: hp %d money %d", s.Player.HP, s.Player.Money)
	}
}
