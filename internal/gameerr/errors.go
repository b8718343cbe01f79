// Package gameerr defines the failures a game action can end in. Every one
// of them is recoverable: the action is aborted and game state is untouched.
package gameerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned for an out-of-range index or unknown name
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInsufficientResource is returned for a gold, stamina, key or scroll shortfall
	ErrInsufficientResource = errors.New("insufficient resource")

	// ErrInsufficientMana is the mana flavour of ErrInsufficientResource
	ErrInsufficientMana = fmt.Errorf("not enough mana: %w", ErrInsufficientResource)

	// ErrUnusableItem is returned when a broken item is put to use
	ErrUnusableItem = errors.New("item is broken")

	// ErrInventoryFull is returned when a carry limit would be exceeded
	ErrInventoryFull = errors.New("inventory full")

	// ErrCorruptSave is returned for an unreadable or malformed snapshot
	ErrCorruptSave = errors.New("corrupt save")

	// ErrNothingHere is returned when the subject of an action is absent
	ErrNothingHere = errors.New("nothing here")

	// ErrBlocked is returned when a living enemy stands in the way
	ErrBlocked = errors.New("blocked")
)
