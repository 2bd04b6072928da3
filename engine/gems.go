// Package engine implements the Splendor board game rules.
//
// The package is a pure state-transition library: every command takes a Game
// snapshot, validates it in full, and returns a fresh snapshot, leaving the
// input untouched. A command either commits atomically or fails with a typed
// error and no visible mutation. The engine performs no I/O, no logging and
// no locking; it assumes a single writer per Game value at a time and leaves
// command serialization to the caller.
package engine

// Gem is one of the six token colors.
type Gem string

const (
	Diamond  Gem = "diamond"
	Sapphire Gem = "sapphire"
	Emerald  Gem = "emerald"
	Ruby     Gem = "ruby"
	Onyx     Gem = "onyx"
	Gold     Gem = "gold"
)

// Gems lists every token color, gold last.
var Gems = [6]Gem{Diamond, Sapphire, Emerald, Ruby, Onyx, Gold}

// BasicGems lists the five colors cards cost and discount. Gold is a wildcard
// token and is never part of a card's cost.
var BasicGems = [5]Gem{Diamond, Sapphire, Emerald, Ruby, Onyx}

// Valid reports whether g is one of the six token colors.
func (g Gem) Valid() bool {
	switch g {
	case Diamond, Sapphire, Emerald, Ruby, Onyx, Gold:
		return true
	}
	return false
}

// TokenBank maps gem colors to non-negative counts. A canonical bank carries
// all six keys; partial banks (take requests, payments) omit zero entries and
// treat absent keys as zero.
type TokenBank map[Gem]int

// NewTokenBank returns a canonical bank with every color present at zero.
func NewTokenBank() TokenBank {
	b := make(TokenBank, len(Gems))
	for _, g := range Gems {
		b[g] = 0
	}
	return b
}

// Clone returns an independent copy of the bank. A nil bank clones to nil.
func (b TokenBank) Clone() TokenBank {
	if b == nil {
		return nil
	}
	out := make(TokenBank, len(b))
	for g, n := range b {
		out[g] = n
	}
	return out
}

// Total returns the sum of all counts in the bank.
func (b TokenBank) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}
