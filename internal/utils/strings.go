package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// JoinSeats renders one order's seat labels the way the admin tables show
// them: comma plus space, original order preserved.
func JoinSeats(seats []string) string {
	return strings.Join(seats, ", ")
}

// JoinSeatLists renders seats across several orders: each order joined first,
// then the per-order strings joined again.
func JoinSeatLists(lists [][]string) string {
	parts := make([]string, 0, len(lists))
	for _, l := range lists {
		parts = append(parts, JoinSeats(l))
	}
	return strings.Join(parts, ", ")
}

// UniqueJoin deduplicates values keeping first-seen order and joins them with
// comma plus space.
func UniqueJoin(values []string) string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return strings.Join(out, ", ")
}
