// Package model holds the stored documents and their aggregate rules.
//
// Grouped collections (hotels, cuisines, itineraries) are aggregate roots
// owning an ordered list of child items. Every change to a child list goes
// through the root's methods, which enforce identity and natural-key
// uniqueness. Partial updates are explicit patch structs merged by pure
// functions.
package model

import "errors"

var (
	// ErrDuplicateChild is returned when a child with the same natural key already exists under the root.
	ErrDuplicateChild = errors.New("child item already exists")

	// ErrChildNotFound is returned when no child carries the requested id.
	ErrChildNotFound = errors.New("child item not found")
)

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func mergeStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}
