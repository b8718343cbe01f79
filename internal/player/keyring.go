package player

import "sort"

// KeyState is the gating state of one floor's stairwell
type KeyState int

const (
	// KeyLocked is the starting state of every floor
	KeyLocked KeyState = iota
	// KeyHeld means the player carries that floor's mysterious key
	KeyHeld
	// KeyUnlocked is terminal: the stairwell no longer needs a key
	KeyUnlocked
)

// String returns the display name of a KeyState
func (s KeyState) String() string {
	switch s {
	case KeyHeld:
		return "key held"
	case KeyUnlocked:
		return "unlocked"
	default:
		return "locked"
	}
}

// KeyRing tracks mysterious keys and unlocked floors
type KeyRing struct {
	held     map[int]bool
	unlocked map[int]bool
}

// NewKeyRing creates a key ring with every floor locked
func NewKeyRing() *KeyRing {
	return &KeyRing{
		held:     make(map[int]bool),
		unlocked: make(map[int]bool),
	}
}

// State returns the gating state of floor
func (k *KeyRing) State(floor int) KeyState {
	switch {
	case k.unlocked[floor]:
		return KeyUnlocked
	case k.held[floor]:
		return KeyHeld
	default:
		return KeyLocked
	}
}

// Grant gives the player floor's key. It returns false, changing nothing,
// when the key is already held or the floor is already unlocked.
func (k *KeyRing) Grant(floor int) bool {
	if k.State(floor) != KeyLocked {
		return false
	}
	k.held[floor] = true
	return true
}

// Drop removes a held key, returning the floor to Locked
func (k *KeyRing) Drop(floor int) bool {
	if !k.held[floor] {
		return false
	}
	delete(k.held, floor)
	return true
}

// Consume spends a held key and permanently unlocks the floor
func (k *KeyRing) Consume(floor int) bool {
	if k.State(floor) != KeyHeld {
		return false
	}
	delete(k.held, floor)
	k.unlocked[floor] = true
	return true
}

// Unlock marks floor as unlocked without a key. Used when restoring saves.
func (k *KeyRing) Unlock(floor int) {
	delete(k.held, floor)
	k.unlocked[floor] = true
}

// HeldFloors returns the floors whose keys are carried, ascending
func (k *KeyRing) HeldFloors() []int {
	return sortedKeys(k.held)
}

// UnlockedFloors returns the unlocked floors, ascending
func (k *KeyRing) UnlockedFloors() []int {
	return sortedKeys(k.unlocked)
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for f, ok := range m {
		if ok {
			out = append(out, f)
		}
	}
	sort.Ints(out)
	return out
}
