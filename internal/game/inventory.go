package game

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/player"
	"github.com/lawnchairsociety/delver/internal/world"
)

// Potion strengths
const (
	HealthPotionHeal     = 30
	StaminaPotionRestore = 10
	ManaPotionRestore    = 15
)

// Crystal strengths
const (
	LifeCrystalMaxHP   = 10
	LifeCrystalHeal    = 20
	StaminaCrystalGain = 10 // current stamina only
	ManaCrystalGain    = 10
)

// PotionKind selects a potion to drink
type PotionKind int

const (
	HealthPotion PotionKind = iota
	StaminaPotion
	ManaPotion
)

// String returns the potion name
func (k PotionKind) String() string {
	switch k {
	case HealthPotion:
		return "health"
	case StaminaPotion:
		return "stamina"
	case ManaPotion:
		return "mana"
	default:
		return "unknown"
	}
}

// ParsePotionKind converts a potion name
func ParsePotionKind(s string) (PotionKind, bool) {
	switch s {
	case "health", "hp", "potion":
		return HealthPotion, true
	case "stamina":
		return StaminaPotion, true
	case "mana":
		return ManaPotion, true
	default:
		return HealthPotion, false
	}
}

// Ground lists what lies on the floor of the current room, in take order:
// weapons, then armor, then a key
func (s *State) Ground() []string {
	room := s.Room()
	var names []string
	for _, w := range room.Weapons {
		names = append(names, w.Name)
	}
	for _, a := range room.Armors {
		names = append(names, a.Name)
	}
	if room.Key != nil {
		names = append(names, fmt.Sprintf("Mysterious Key (floor %d)", room.Key.Floor))
	}
	return names
}

// Take picks up ground item i, numbered as Ground lists them
func (s *State) Take(i int) (string, error) {
	room := s.Room()
	switch {
	case i >= 0 && i < len(room.Weapons):
		w := room.Weapons[i]
		if err := s.Player.AddWeapon(w); err != nil {
			return "", err
		}
		items.RemoveAt(&room.Weapons, i)
		s.Player.Stats.RecordItemCollected()
		return w.Name, nil

	case i >= len(room.Weapons) && i < room.GroundCount():
		j := i - len(room.Weapons)
		a := room.Armors[j]
		if err := s.Player.AddArmor(a); err != nil {
			return "", err
		}
		items.RemoveAt(&room.Armors, j)
		s.Player.Stats.RecordItemCollected()
		return a.Name, nil

	case i == room.GroundCount() && room.Key != nil:
		if err := s.TakeKey(); err != nil {
			return "", err
		}
		return "Mysterious Key", nil
	}
	return "", fmt.Errorf("no item %d on the ground: %w", i+1, gameerr.ErrInvalidSelection)
}

// TakeAll picks up everything that fits. Items that don't fit stay where
// they are.
func (s *State) TakeAll() ([]string, error) {
	room := s.Room()
	if room.GroundCount() == 0 && room.Key == nil {
		return nil, fmt.Errorf("nothing to take: %w", gameerr.ErrNothingHere)
	}

	var taken []string
	var weapons []*items.Weapon
	for _, w := range room.Weapons {
		if s.Player.AddWeapon(w) != nil {
			weapons = append(weapons, w)
			continue
		}
		s.Player.Stats.RecordItemCollected()
		taken = append(taken, w.Name)
	}
	room.Weapons = weapons

	var armors []*items.Armor
	for _, a := range room.Armors {
		if s.Player.AddArmor(a) != nil {
			armors = append(armors, a)
			continue
		}
		s.Player.Stats.RecordItemCollected()
		taken = append(taken, a.Name)
	}
	room.Armors = armors

	if room.Key != nil && s.TakeKey() == nil {
		taken = append(taken, "Mysterious Key")
	}
	return taken, nil
}

// TakeKey picks up the mysterious key lying in the room. A floor holds at
// most one key per player, so a second key for a held or unlocked floor
// stays on the ground.
func (s *State) TakeKey() error {
	room := s.Room()
	if room.Key == nil {
		return fmt.Errorf("no key here: %w", gameerr.ErrNothingHere)
	}
	floor := room.Key.Floor
	switch s.Player.Keys.State(floor) {
	case player.KeyHeld:
		return fmt.Errorf("already carrying the floor %d key: %w", floor, gameerr.ErrInventoryFull)
	case player.KeyUnlocked:
		return fmt.Errorf("floor %d is already unlocked: %w", floor, gameerr.ErrInventoryFull)
	}
	s.Player.Keys.Grant(floor)
	room.Key = nil
	s.Player.Stats.RecordItemCollected()
	return nil
}

// DropKey leaves the current floor's key on the ground of this room
func (s *State) DropKey() error {
	room := s.Room()
	floor := s.Pos.Floor
	if s.Player.Keys.State(floor) != player.KeyHeld {
		return fmt.Errorf("no floor %d key to drop: %w", floor, gameerr.ErrInsufficientResource)
	}
	if room.Kind != world.KindNormal || room.Key != nil {
		return fmt.Errorf("can't leave a key here: %w", gameerr.ErrInvalidSelection)
	}
	s.Player.Keys.Drop(floor)
	room.Key = &world.KeyPickup{Floor: floor}
	return nil
}

// Drop puts carried item i on the ground: weapons are numbered first, then
// armor. Dropping worn armor unequips it.
func (s *State) Drop(i int) (string, error) {
	room := s.Room()
	p := s.Player
	if i >= 0 && i < len(p.Weapons) {
		w, err := p.RemoveWeapon(i)
		if err != nil {
			return "", err
		}
		room.Weapons = append(room.Weapons, w)
		return w.Name, nil
	}
	a, err := p.RemoveArmor(i - len(p.Weapons))
	if err != nil {
		return "", fmt.Errorf("no item %d: %w", i+1, gameerr.ErrInvalidSelection)
	}
	room.Armors = append(room.Armors, a)
	return a.Name, nil
}

// Equip wears armor i
func (s *State) Equip(i int) error {
	return s.Player.Equip(i)
}

// Switch wields weapon i. A worn out weapon can't be wielded.
func (s *State) Switch(i int) error {
	p := s.Player
	if i < 0 || i >= len(p.Weapons) {
		return fmt.Errorf("no weapon %d: %w", i+1, gameerr.ErrInvalidSelection)
	}
	if !p.Weapons[i].Usable() {
		return fmt.Errorf("%s needs repair: %w", p.Weapons[i].Name, gameerr.ErrUnusableItem)
	}
	return p.Wield(i)
}

// SwitchToFists fights bare handed without dropping anything
func (s *State) SwitchToFists() {
	s.Player.UseFists()
}

// Absorb drains the room's crystal and returns what it was
func (s *State) Absorb() (world.Crystal, error) {
	room := s.Room()
	crystal := room.Crystal
	if crystal == world.CrystalNone {
		return crystal, fmt.Errorf("nothing to absorb: %w", gameerr.ErrNothingHere)
	}

	life, stamina, mana := crystal.Grants()
	p := s.Player
	if life {
		p.RaiseMaxHP(LifeCrystalMaxHP)
		p.Heal(LifeCrystalHeal)
	}
	if stamina {
		p.RestoreStamina(StaminaCrystalGain)
	}
	if mana {
		p.RaiseMaxMana(ManaCrystalGain)
		p.RestoreMana(ManaCrystalGain)
	}
	room.Crystal = world.CrystalNone
	logger.Debug("crystal absorbed", "crystal", crystal.String(), "floor", s.Pos.Floor)
	return crystal, nil
}

// UsePotion drinks one potion of kind and returns the amount restored
func (s *State) UsePotion(kind PotionKind) (int, error) {
	p := s.Player
	var count *int
	switch kind {
	case HealthPotion:
		count = &p.HealthPotions
	case StaminaPotion:
		count = &p.StaminaPotions
	case ManaPotion:
		count = &p.ManaPotions
	default:
		return 0, fmt.Errorf("unknown potion: %w", gameerr.ErrInvalidSelection)
	}
	if *count <= 0 {
		return 0, fmt.Errorf("no %s potions: %w", kind, gameerr.ErrInsufficientResource)
	}
	*count--

	switch kind {
	case StaminaPotion:
		return p.RestoreStamina(StaminaPotionRestore), nil
	case ManaPotion:
		return p.RestoreMana(ManaPotionRestore), nil
	default:
		return p.Heal(HealthPotionHeal), nil
	}
}

// LearnSpell reads a spell scroll
func (s *State) LearnSpell(name string) error {
	if _, ok := s.spells.Get(name); !ok {
		return fmt.Errorf("unknown spell %q: %w", name, gameerr.ErrInvalidSelection)
	}
	return s.Player.LearnSpell(name)
}
