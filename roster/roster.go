// SPDX-License-Identifier: MIT
// Package roster: the Player record, its mutation pair, and sentinel errors.

package roster

import "errors"

// Sentinel errors for roster operations.
var (
	// ErrEmptyRoster indicates an aggregate query over a roster with no players.
	ErrEmptyRoster = errors.New("roster: roster is empty")
)

// Player is the lesson's demonstration record: identity, a display name,
// and a health pool.
type Player struct {
	// ID identifies the player within one demonstration list.
	ID int

	// Name is the display name.
	Name string

	// Health is the current health pool; operations keep it >= 0.
	Health int
}

// Healed returns a copy of p with n added to its health.
//
// Value receiver on purpose: the caller's Player is untouched. This is one
// half of the mutation-visibility pair; Heal is the other.
// Complexity: O(1)
func (p Player) Healed(n int) Player {
	p.Health = clampHealth(p.Health + n)

	return p
}

// Heal adds n to p's health in place.
//
// Pointer receiver on purpose: the mutation is visible to the caller.
// Complexity: O(1)
func (p *Player) Heal(n int) {
	p.Health = clampHealth(p.Health + n)
}

// Damage subtracts n from p's health in place, clamping at zero.
// Complexity: O(1)
func (p *Player) Damage(n int) {
	p.Health = clampHealth(p.Health - n)
}

// clampHealth keeps health non-negative.
func clampHealth(h int) int {
	if h < 0 {
		return 0
	}

	return h
}

// Roster is one demonstration list of players. It is a plain slice value:
// copying a Roster header is cheap, and every operation below that returns
// a Roster returns a fresh one.
type Roster []Player
