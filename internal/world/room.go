package world

import (
	"github.com/lawnchairsociety/delver/internal/items"
	"github.com/lawnchairsociety/delver/internal/npc"
)

// Room is one generated cell of a floor. Build rooms through the New*
// constructors; each kind only carries the payload it needs.
type Room struct {
	Kind        RoomKind
	Description string

	// Enemies is nil once the room is cleared, otherwise non-empty
	Enemies []*npc.Enemy

	Weapons []*items.Weapon
	Armors  []*items.Armor

	Shop  *Shop  // KindShop only
	Chest *Chest // KindChest only
	Vault *Vault // KindKeyDoor only

	Crystal Crystal    // KindNormal only
	Key     *KeyPickup // KindNormal only
}

// Fixed descriptions of the special rooms
const (
	StairwellDescription = "You find a mysterious stairwell leading deeper into the dungeon..."
	ChestDescription     = "You find an old stone chamber with a heavy locked chest."
	ShopDescription      = "A cozy shop with items for sale."
	DiscountDescription  = "A cozy discount shop with items for sale at reduced prices!"
	OriginDescription    = "You are in a clearing with a training dummy."
)

// NewNormalRoom creates a normal room
func NewNormalRoom(description string) *Room {
	return &Room{Kind: KindNormal, Description: description}
}

// NewStairwellRoom creates an empty stairwell
func NewStairwellRoom() *Room {
	return &Room{Kind: KindStairwell, Description: StairwellDescription}
}

// NewVaultRoom creates a key-door vault guarded by boss
func NewVaultRoom(boss *npc.Enemy) *Room {
	article := "a"
	if boss.Name == "Troll" {
		article = "the"
	}
	return &Room{
		Kind:        KindKeyDoor,
		Description: "You find a glowing golden door... and " + article + " " + boss.Name + " guarding it!",
		Enemies:     []*npc.Enemy{boss},
		Vault:       &Vault{},
	}
}

// NewChestRoom creates a room holding chest
func NewChestRoom(chest *Chest) *Room {
	return &Room{Kind: KindChest, Description: ChestDescription, Chest: chest}
}

// NewShopRoom creates a merchant room
func NewShopRoom(shop *Shop) *Room {
	desc := ShopDescription
	if shop.IsDiscount() {
		desc = DiscountDescription
	}
	return &Room{Kind: KindShop, Description: desc, Shop: shop}
}

// RequiresKey reports whether leaving through this room needs a floor key
func (r *Room) RequiresKey() bool {
	return r.Kind == KindStairwell
}

// HasEnemies reports whether anything is left to fight
func (r *Room) HasEnemies() bool {
	return len(r.Enemies) > 0
}

// IsSwarm reports whether the room holds more than one target
func (r *Room) IsSwarm() bool {
	return len(r.Enemies) > 1
}

// Blocker returns the first living enemy that stops the player leaving
func (r *Room) Blocker() *npc.Enemy {
	for _, e := range r.Enemies {
		if e.BlocksPassage() {
			return e
		}
	}
	return nil
}

// Boss returns the living boss in the room, if any
func (r *Room) Boss() *npc.Enemy {
	for _, e := range r.Enemies {
		if e.IsBoss && e.IsAlive() {
			return e
		}
	}
	return nil
}

// RemoveEnemy drops a defeated enemy. The last removal clears the slot.
func (r *Room) RemoveEnemy(target *npc.Enemy) {
	i := items.IndexOf(r.Enemies, target)
	if i < 0 {
		return
	}
	r.Enemies = append(r.Enemies[:i], r.Enemies[i+1:]...)
	if len(r.Enemies) == 0 {
		r.Enemies = nil
	}
}

// GroundCount is the number of items lying on the floor
func (r *Room) GroundCount() int {
	return len(r.Weapons) + len(r.Armors)
}
