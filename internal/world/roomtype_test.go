package world

import "testing"

func TestParseRoomKind(t *testing.T) {
	for _, k := range []RoomKind{KindNormal, KindStairwell, KindKeyDoor, KindChest, KindShop} {
		got, ok := ParseRoomKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseRoomKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseRoomKind("dungeon"); ok {
		t.Error("ParseRoomKind accepted an unknown kind")
	}
}

func TestCrystalGrants(t *testing.T) {
	tests := []struct {
		crystal             Crystal
		life, stamina, mana bool
	}{
		{CrystalNone, false, false, false},
		{CrystalLife, true, false, false},
		{CrystalStamina, false, true, false},
		{CrystalMana, false, false, true},
		{CrystalLifeStamina, true, true, false},
		{CrystalLifeMana, true, false, true},
		{CrystalAll, true, true, true},
	}

	for _, tc := range tests {
		life, stamina, mana := tc.crystal.Grants()
		if life != tc.life || stamina != tc.stamina || mana != tc.mana {
			t.Errorf("%q.Grants() = %v/%v/%v, want %v/%v/%v", tc.crystal, life, stamina, mana, tc.life, tc.stamina, tc.mana)
		}
		parsed, ok := ParseCrystal(tc.crystal.String())
		if !ok || parsed != tc.crystal {
			t.Errorf("ParseCrystal(%q) = %v, %v", tc.crystal.String(), parsed, ok)
		}
	}
}
