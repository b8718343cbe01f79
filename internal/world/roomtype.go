package world

// RoomKind is the archetype a room was generated as
type RoomKind int

const (
	KindNormal    RoomKind = iota // Description, optional loot, enemy, crystal and key
	KindStairwell                 // Empty, leads to the next floor
	KindKeyDoor                   // Boss-guarded vault
	KindChest                     // Locked chest
	KindShop                      // Merchant
)

// String returns the string representation of a RoomKind
func (k RoomKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindStairwell:
		return "stairwell"
	case KindKeyDoor:
		return "key_door"
	case KindChest:
		return "chest"
	case KindShop:
		return "shop"
	default:
		return "unknown"
	}
}

// ParseRoomKind converts a string to a RoomKind
func ParseRoomKind(s string) (RoomKind, bool) {
	switch s {
	case "normal", "":
		return KindNormal, true
	case "stairwell":
		return KindStairwell, true
	case "key_door":
		return KindKeyDoor, true
	case "chest":
		return KindChest, true
	case "shop":
		return KindShop, true
	default:
		return KindNormal, false
	}
}

// Crystal is the shrine found in some normal rooms
type Crystal int

const (
	CrystalNone Crystal = iota
	CrystalLife
	CrystalStamina
	CrystalMana
	CrystalLifeStamina
	CrystalLifeMana
	CrystalAll
)

// String returns the save-file name of a Crystal
func (c Crystal) String() string {
	switch c {
	case CrystalLife:
		return "life"
	case CrystalStamina:
		return "stamina"
	case CrystalMana:
		return "mana"
	case CrystalLifeStamina:
		return "life_stamina"
	case CrystalLifeMana:
		return "life_mana"
	case CrystalAll:
		return "all"
	default:
		return ""
	}
}

// ParseCrystal converts a save-file name to a Crystal
func ParseCrystal(s string) (Crystal, bool) {
	switch s {
	case "":
		return CrystalNone, true
	case "life":
		return CrystalLife, true
	case "stamina":
		return CrystalStamina, true
	case "mana":
		return CrystalMana, true
	case "life_stamina":
		return CrystalLifeStamina, true
	case "life_mana":
		return CrystalLifeMana, true
	case "all":
		return CrystalAll, true
	default:
		return CrystalNone, false
	}
}

// Grants reports which resources absorbing the crystal restores
func (c Crystal) Grants() (life, stamina, mana bool) {
	switch c {
	case CrystalLife:
		return true, false, false
	case CrystalStamina:
		return false, true, false
	case CrystalMana:
		return false, false, true
	case CrystalLifeStamina:
		return true, true, false
	case CrystalLifeMana:
		return true, false, true
	case CrystalAll:
		return true, true, true
	default:
		return false, false, false
	}
}
