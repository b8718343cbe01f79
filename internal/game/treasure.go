package game

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/combat"
	"github.com/lawnchairsociety/delver/internal/gameerr"
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/logger"
	"github.com/lawnchairsociety/delver/internal/stats"
	"github.com/lawnchairsociety/delver/internal/world"
)

// VaultGold is the gold behind every key door
const VaultGold = 60

// VaultHaul is what looting a vault gave the player
type VaultHaul struct {
	Gold         int
	Potions      int
	Armor        *items.Armor
	ArmorOnFloor bool // the armor bag was full
	KeyFloor     int
	KeyGranted   bool
}

// ChestHaul is what opening a chest gave the player
type ChestHaul struct {
	Weapons     []*items.Weapon // left on the ground
	Armor       *items.Armor    // left on the ground
	Potions     int
	LifeCrystal bool
}

// Attack plays one combat round against the room's enemies
func (s *State) Attack(action combat.Action) (combat.Outcome, error) {
	out, err := s.combat.ResolveAttack(s.Pos, s.Room(), s.Player, action)
	if err != nil {
		return out, err
	}
	if out.PlayerDefeated {
		logger.Info("player defeated", "floor", s.Pos.Floor, "x", s.Pos.X, "y", s.Pos.Y, "by", out.Target)
	}
	return out, nil
}

// Loot opens a cleared key-door vault with a golden key
func (s *State) Loot() (VaultHaul, error) {
	var haul VaultHaul
	room := s.Room()
	if room.Kind != world.KindKeyDoor || room.Vault == nil {
		return haul, fmt.Errorf("no vault here: %w", gameerr.ErrNothingHere)
	}
	p := s.Player
	if err := p.RequireGoldenKey(); err != nil {
		return haul, err
	}
	if boss := room.Boss(); boss != nil {
		return haul, fmt.Errorf("the %s guards the vault: %w", boss.Name, gameerr.ErrBlocked)
	}
	if room.Vault.Looted {
		return haul, fmt.Errorf("the vault is empty: %w", gameerr.ErrNothingHere)
	}

	p.SpendGoldenKey()
	haul.Gold = VaultGold
	p.AddMoney(haul.Gold)
	p.Stats.RecordGoldEarned(haul.Gold)

	haul.Potions = s.r.Between(2, 4)
	p.HealthPotions += haul.Potions

	haul.Armor = items.TrollHide(stats.Distance(s.Pos.X, s.Pos.Y))
	if p.AddArmor(haul.Armor) != nil {
		room.Armors = append(room.Armors, haul.Armor)
		haul.ArmorOnFloor = true
	} else {
		p.Stats.RecordItemCollected()
	}

	haul.KeyFloor = s.Pos.Floor
	haul.KeyGranted = p.Keys.Grant(s.Pos.Floor)

	room.Vault.Looted = true
	logger.Info("vault looted", "floor", s.Pos.Floor, "x", s.Pos.X, "y", s.Pos.Y, "key_granted", haul.KeyGranted)
	return haul, nil
}

// Open unlocks the room's chest with a golden key. Equipment spills onto
// the ground; potions and the crystal go straight to the player.
func (s *State) Open() (ChestHaul, error) {
	var haul ChestHaul
	room := s.Room()
	if room.Kind != world.KindChest || room.Chest == nil {
		return haul, fmt.Errorf("no chest here: %w", gameerr.ErrNothingHere)
	}
	chest := room.Chest
	if !chest.Locked {
		return haul, fmt.Errorf("the chest is already open: %w", gameerr.ErrNothingHere)
	}
	p := s.Player
	if err := p.SpendGoldenKey(); err != nil {
		return haul, err
	}

	chest.Locked = false
	haul = ChestHaul{
		Weapons:     chest.Weapons,
		Armor:       chest.Armor,
		Potions:     chest.Potions,
		LifeCrystal: chest.LifeCrystal,
	}
	room.Weapons = append(room.Weapons, chest.Weapons...)
	if chest.Armor != nil {
		room.Armors = append(room.Armors, chest.Armor)
	}
	p.HealthPotions += chest.Potions
	if chest.LifeCrystal {
		p.RaiseMaxHP(LifeCrystalMaxHP)
		p.Heal(LifeCrystalHeal)
	}

	chest.Weapons = nil
	chest.Armor = nil
	chest.Potions = 0
	chest.LifeCrystal = false
	logger.Debug("chest opened", "floor", s.Pos.Floor, "x", s.Pos.X, "y", s.Pos.Y)
	return haul, nil
}
