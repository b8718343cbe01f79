package items

import (
	"fmt"

	"github.com/lawnchairsociety/delver/internal/gameerr"
)

// Add appends item to a collection capped at limit
func Add[T any](list *[]T, item T, limit int) error {
	if len(*list) >= limit {
		return fmt.Errorf("limit of %d reached: %w", limit, gameerr.ErrInventoryFull)
	}
	*list = append(*list, item)
	return nil
}

// RemoveAt removes and returns the item at index i
func RemoveAt[T any](list *[]T, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(*list) {
		return zero, fmt.Errorf("no item %d: %w", i+1, gameerr.ErrInvalidSelection)
	}
	item := (*list)[i]
	*list = append((*list)[:i], (*list)[i+1:]...)
	return item, nil
}

// MoveToFront moves the item at index i to slot 0, keeping the order of the rest
func MoveToFront[T any](list []T, i int) error {
	if i < 0 || i >= len(list) {
		return fmt.Errorf("no item %d: %w", i+1, gameerr.ErrInvalidSelection)
	}
	item := list[i]
	copy(list[1:i+1], list[:i])
	list[0] = item
	return nil
}

// IndexOf returns the position of item in list, or -1
func IndexOf[T comparable](list []T, item T) int {
	for i, v := range list {
		if v == item {
			return i
		}
	}
	return -1
}
