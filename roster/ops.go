// Package roster: closure-driven search, filter and sort operations.

package roster

import (
	"slices"
	"sort"
)

// Find returns the first player satisfying pred, scanning in list order.
// The boolean reports whether any player matched.
// Complexity: O(n)
func (r Roster) Find(pred func(Player) bool) (Player, bool) {
	for _, p := range r {
		if pred(p) {
			return p, true
		}
	}

	return Player{}, false
}

// FindByID returns the first player with the given ID.
// Complexity: O(n)
func (r Roster) FindByID(id int) (Player, bool) {
	return r.Find(func(p Player) bool { return p.ID == id })
}

// Filter returns a fresh Roster holding the players satisfying pred, in
// their original order. The receiver is never mutated; the result never
// aliases it.
// Complexity: O(n)
func (r Roster) Filter(pred func(Player) bool) Roster {
	var out Roster
	for _, p := range r {
		if pred(p) {
			out = append(out, p)
		}
	}

	return out
}

// CountIf reports how many players satisfy pred.
// Complexity: O(n)
func (r Roster) CountIf(pred func(Player) bool) int {
	count := 0
	for _, p := range r {
		if pred(p) {
			count++
		}
	}

	return count
}

// SortBy returns a sorted copy of r ordered by less. The sort is stable:
// players comparing equal keep their relative order. The receiver is
// never reordered.
// Complexity: O(n log n) time, O(n) memory for the copy.
func (r Roster) SortBy(less func(a, b Player) bool) Roster {
	out := Roster(slices.Clone(r))
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })

	return out
}

// Healthiest returns the player with the highest health, or ErrEmptyRoster
// when the roster has no players. Ties resolve to the earliest player in
// list order.
// Complexity: O(n)
func (r Roster) Healthiest() (Player, error) {
	if len(r) == 0 {
		return Player{}, ErrEmptyRoster
	}
	best := r[0]
	for _, p := range r[1:] {
		if p.Health > best.Health {
			best = p
		}
	}

	return best, nil
}
