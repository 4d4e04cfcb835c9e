package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Trimmed returns a copy of ptr with surrounding whitespace removed; nil stays nil.
func Trimmed(ptr *string) *string {
	if ptr == nil {
		return nil
	}
	s := strings.TrimSpace(*ptr)
	return &s
}

// Changed reports whether applying ptr on top of current would alter it.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
