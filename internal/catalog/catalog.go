// Package catalog ships the fixed development card and noble tiles used to
// initialize games. The data is pre-validated reference material: tiers run
// 1-3, costs never include gold, and every noble is worth three prestige.
// Callers must treat the returned slices as read-only; the engine deep-copies
// whatever it deals onto a board.
package catalog

import "github.com/Benjaminnnnnn/splendor-sub002/engine"

// Cards returns the 90-card development catalog: 40 tier 1, 30 tier 2 and
// 20 tier 3 cards, evenly split across the five bonus colors.
func Cards() []engine.Card {
	return append([]engine.Card(nil), cards...)
}

// Nobles returns the 10-tile noble catalog.
func Nobles() []engine.Noble {
	return append([]engine.Noble(nil), nobles...)
}

// cost builds a card cost in diamond, sapphire, emerald, ruby, onyx order,
// omitting zeros.
func cost(d, s, e, r, o int) engine.TokenBank {
	b := engine.TokenBank{}
	for gem, n := range map[engine.Gem]int{
		engine.Diamond: d, engine.Sapphire: s, engine.Emerald: e, engine.Ruby: r, engine.Onyx: o,
	} {
		if n > 0 {
			b[gem] = n
		}
	}
	return b
}

var cards = []engine.Card{
	// Tier 1 — onyx bonus.
	{ID: 1, Tier: 1, Bonus: engine.Onyx, Cost: cost(1, 1, 1, 1, 0)},
	{ID: 2, Tier: 1, Bonus: engine.Onyx, Cost: cost(1, 2, 1, 1, 0)},
	{ID: 3, Tier: 1, Bonus: engine.Onyx, Cost: cost(2, 2, 0, 1, 0)},
	{ID: 4, Tier: 1, Bonus: engine.Onyx, Cost: cost(0, 0, 1, 3, 1)},
	{ID: 5, Tier: 1, Bonus: engine.Onyx, Cost: cost(0, 0, 2, 1, 0)},
	{ID: 6, Tier: 1, Bonus: engine.Onyx, Cost: cost(2, 0, 2, 0, 0)},
	{ID: 7, Tier: 1, Bonus: engine.Onyx, Cost: cost(0, 0, 3, 0, 0)},
	{ID: 8, Tier: 1, Bonus: engine.Onyx, Cost: cost(0, 4, 0, 0, 0), Prestige: 1},
	// Tier 1 — sapphire bonus.
	{ID: 9, Tier: 1, Bonus: engine.Sapphire, Cost: cost(1, 0, 1, 1, 1)},
	{ID: 10, Tier: 1, Bonus: engine.Sapphire, Cost: cost(1, 0, 1, 2, 1)},
	{ID: 11, Tier: 1, Bonus: engine.Sapphire, Cost: cost(1, 0, 2, 2, 0)},
	{ID: 12, Tier: 1, Bonus: engine.Sapphire, Cost: cost(0, 1, 3, 1, 0)},
	{ID: 13, Tier: 1, Bonus: engine.Sapphire, Cost: cost(1, 0, 0, 0, 2)},
	{ID: 14, Tier: 1, Bonus: engine.Sapphire, Cost: cost(0, 0, 2, 0, 2)},
	{ID: 15, Tier: 1, Bonus: engine.Sapphire, Cost: cost(0, 0, 0, 0, 3)},
	{ID: 16, Tier: 1, Bonus: engine.Sapphire, Cost: cost(0, 0, 0, 4, 0), Prestige: 1},
	// Tier 1 — diamond bonus.
	{ID: 17, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 1, 1, 1, 1)},
	{ID: 18, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 1, 2, 1, 1)},
	{ID: 19, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 2, 2, 0, 1)},
	{ID: 20, Tier: 1, Bonus: engine.Diamond, Cost: cost(3, 1, 0, 0, 1)},
	{ID: 21, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 0, 0, 2, 1)},
	{ID: 22, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 2, 0, 0, 2)},
	{ID: 23, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 3, 0, 0, 0)},
	{ID: 24, Tier: 1, Bonus: engine.Diamond, Cost: cost(0, 0, 4, 0, 0), Prestige: 1},
	// Tier 1 — emerald bonus.
	{ID: 25, Tier: 1, Bonus: engine.Emerald, Cost: cost(1, 1, 0, 1, 1)},
	{ID: 26, Tier: 1, Bonus: engine.Emerald, Cost: cost(1, 1, 0, 1, 2)},
	{ID: 27, Tier: 1, Bonus: engine.Emerald, Cost: cost(0, 1, 0, 2, 2)},
	{ID: 28, Tier: 1, Bonus: engine.Emerald, Cost: cost(1, 3, 1, 0, 0)},
	{ID: 29, Tier: 1, Bonus: engine.Emerald, Cost: cost(2, 1, 0, 0, 0)},
	{ID: 30, Tier: 1, Bonus: engine.Emerald, Cost: cost(0, 2, 0, 2, 0)},
	{ID: 31, Tier: 1, Bonus: engine.Emerald, Cost: cost(0, 0, 0, 3, 0)},
	{ID: 32, Tier: 1, Bonus: engine.Emerald, Cost: cost(0, 0, 0, 0, 4), Prestige: 1},
	// Tier 1 — ruby bonus.
	{ID: 33, Tier: 1, Bonus: engine.Ruby, Cost: cost(1, 1, 1, 0, 1)},
	{ID: 34, Tier: 1, Bonus: engine.Ruby, Cost: cost(2, 1, 1, 0, 1)},
	{ID: 35, Tier: 1, Bonus: engine.Ruby, Cost: cost(2, 0, 1, 0, 2)},
	{ID: 36, Tier: 1, Bonus: engine.Ruby, Cost: cost(1, 0, 0, 1, 3)},
	{ID: 37, Tier: 1, Bonus: engine.Ruby, Cost: cost(0, 2, 1, 0, 0)},
	{ID: 38, Tier: 1, Bonus: engine.Ruby, Cost: cost(2, 0, 0, 2, 0)},
	{ID: 39, Tier: 1, Bonus: engine.Ruby, Cost: cost(3, 0, 0, 0, 0)},
	{ID: 40, Tier: 1, Bonus: engine.Ruby, Cost: cost(4, 0, 0, 0, 0), Prestige: 1},
	// Tier 2 — onyx bonus.
	{ID: 41, Tier: 2, Bonus: engine.Onyx, Cost: cost(3, 2, 2, 0, 0), Prestige: 1},
	{ID: 42, Tier: 2, Bonus: engine.Onyx, Cost: cost(3, 0, 3, 0, 2), Prestige: 1},
	{ID: 43, Tier: 2, Bonus: engine.Onyx, Cost: cost(0, 1, 4, 2, 0), Prestige: 2},
	{ID: 44, Tier: 2, Bonus: engine.Onyx, Cost: cost(0, 0, 5, 3, 0), Prestige: 2},
	{ID: 45, Tier: 2, Bonus: engine.Onyx, Cost: cost(5, 0, 0, 0, 0), Prestige: 2},
	{ID: 46, Tier: 2, Bonus: engine.Onyx, Cost: cost(0, 0, 0, 0, 6), Prestige: 3},
	// Tier 2 — sapphire bonus.
	{ID: 47, Tier: 2, Bonus: engine.Sapphire, Cost: cost(0, 2, 2, 3, 0), Prestige: 1},
	{ID: 48, Tier: 2, Bonus: engine.Sapphire, Cost: cost(0, 2, 3, 0, 3), Prestige: 1},
	{ID: 49, Tier: 2, Bonus: engine.Sapphire, Cost: cost(5, 3, 0, 0, 0), Prestige: 2},
	{ID: 50, Tier: 2, Bonus: engine.Sapphire, Cost: cost(2, 0, 0, 1, 4), Prestige: 2},
	{ID: 51, Tier: 2, Bonus: engine.Sapphire, Cost: cost(0, 5, 0, 0, 0), Prestige: 2},
	{ID: 52, Tier: 2, Bonus: engine.Sapphire, Cost: cost(0, 6, 0, 0, 0), Prestige: 3},
	// Tier 2 — diamond bonus.
	{ID: 53, Tier: 2, Bonus: engine.Diamond, Cost: cost(0, 0, 3, 2, 2), Prestige: 1},
	{ID: 54, Tier: 2, Bonus: engine.Diamond, Cost: cost(2, 3, 0, 3, 0), Prestige: 1},
	{ID: 55, Tier: 2, Bonus: engine.Diamond, Cost: cost(0, 0, 1, 4, 2), Prestige: 2},
	{ID: 56, Tier: 2, Bonus: engine.Diamond, Cost: cost(0, 0, 0, 5, 3), Prestige: 2},
	{ID: 57, Tier: 2, Bonus: engine.Diamond, Cost: cost(0, 0, 0, 5, 0), Prestige: 2},
	{ID: 58, Tier: 2, Bonus: engine.Diamond, Cost: cost(6, 0, 0, 0, 0), Prestige: 3},
	// Tier 2 — emerald bonus.
	{ID: 59, Tier: 2, Bonus: engine.Emerald, Cost: cost(3, 0, 2, 3, 0), Prestige: 1},
	{ID: 60, Tier: 2, Bonus: engine.Emerald, Cost: cost(2, 3, 0, 0, 2), Prestige: 1},
	{ID: 61, Tier: 2, Bonus: engine.Emerald, Cost: cost(4, 2, 0, 0, 1), Prestige: 2},
	{ID: 62, Tier: 2, Bonus: engine.Emerald, Cost: cost(0, 5, 3, 0, 0), Prestige: 2},
	{ID: 63, Tier: 2, Bonus: engine.Emerald, Cost: cost(0, 0, 5, 0, 0), Prestige: 2},
	{ID: 64, Tier: 2, Bonus: engine.Emerald, Cost: cost(0, 0, 6, 0, 0), Prestige: 3},
	// Tier 2 — ruby bonus.
	{ID: 65, Tier: 2, Bonus: engine.Ruby, Cost: cost(2, 0, 0, 2, 3), Prestige: 1},
	{ID: 66, Tier: 2, Bonus: engine.Ruby, Cost: cost(0, 3, 0, 2, 3), Prestige: 1},
	{ID: 67, Tier: 2, Bonus: engine.Ruby, Cost: cost(1, 4, 2, 0, 0), Prestige: 2},
	{ID: 68, Tier: 2, Bonus: engine.Ruby, Cost: cost(3, 0, 0, 0, 5), Prestige: 2},
	{ID: 69, Tier: 2, Bonus: engine.Ruby, Cost: cost(0, 0, 0, 0, 5), Prestige: 2},
	{ID: 70, Tier: 2, Bonus: engine.Ruby, Cost: cost(0, 0, 0, 6, 0), Prestige: 3},
	// Tier 3 — onyx bonus.
	{ID: 71, Tier: 3, Bonus: engine.Onyx, Cost: cost(3, 3, 5, 3, 0), Prestige: 3},
	{ID: 72, Tier: 3, Bonus: engine.Onyx, Cost: cost(0, 0, 0, 7, 0), Prestige: 4},
	{ID: 73, Tier: 3, Bonus: engine.Onyx, Cost: cost(0, 0, 3, 6, 3), Prestige: 4},
	{ID: 74, Tier: 3, Bonus: engine.Onyx, Cost: cost(0, 0, 0, 7, 3), Prestige: 5},
	// Tier 3 — sapphire bonus.
	{ID: 75, Tier: 3, Bonus: engine.Sapphire, Cost: cost(3, 0, 3, 3, 5), Prestige: 3},
	{ID: 76, Tier: 3, Bonus: engine.Sapphire, Cost: cost(7, 0, 0, 0, 0), Prestige: 4},
	{ID: 77, Tier: 3, Bonus: engine.Sapphire, Cost: cost(6, 3, 0, 0, 3), Prestige: 4},
	{ID: 78, Tier: 3, Bonus: engine.Sapphire, Cost: cost(7, 3, 0, 0, 0), Prestige: 5},
	// Tier 3 — diamond bonus.
	{ID: 79, Tier: 3, Bonus: engine.Diamond, Cost: cost(0, 3, 3, 5, 3), Prestige: 3},
	{ID: 80, Tier: 3, Bonus: engine.Diamond, Cost: cost(0, 0, 0, 0, 7), Prestige: 4},
	{ID: 81, Tier: 3, Bonus: engine.Diamond, Cost: cost(3, 0, 0, 3, 6), Prestige: 4},
	{ID: 82, Tier: 3, Bonus: engine.Diamond, Cost: cost(3, 0, 0, 0, 7), Prestige: 5},
	// Tier 3 — emerald bonus.
	{ID: 83, Tier: 3, Bonus: engine.Emerald, Cost: cost(5, 3, 0, 3, 3), Prestige: 3},
	{ID: 84, Tier: 3, Bonus: engine.Emerald, Cost: cost(0, 7, 0, 0, 0), Prestige: 4},
	{ID: 85, Tier: 3, Bonus: engine.Emerald, Cost: cost(3, 6, 3, 0, 0), Prestige: 4},
	{ID: 86, Tier: 3, Bonus: engine.Emerald, Cost: cost(0, 7, 3, 0, 0), Prestige: 5},
	// Tier 3 — ruby bonus.
	{ID: 87, Tier: 3, Bonus: engine.Ruby, Cost: cost(3, 5, 3, 0, 3), Prestige: 3},
	{ID: 88, Tier: 3, Bonus: engine.Ruby, Cost: cost(0, 0, 7, 0, 0), Prestige: 4},
	{ID: 89, Tier: 3, Bonus: engine.Ruby, Cost: cost(0, 3, 6, 3, 0), Prestige: 4},
	{ID: 90, Tier: 3, Bonus: engine.Ruby, Cost: cost(0, 0, 7, 3, 0), Prestige: 5},
}

// req builds a noble requirement in the same color order as cost.
func req(d, s, e, r, o int) engine.TokenBank {
	return cost(d, s, e, r, o)
}

var nobles = []engine.Noble{
	{ID: 901, Requirements: req(0, 0, 4, 4, 0), Prestige: 3},
	{ID: 902, Requirements: req(0, 0, 0, 4, 4), Prestige: 3},
	{ID: 903, Requirements: req(4, 4, 0, 0, 0), Prestige: 3},
	{ID: 904, Requirements: req(0, 4, 4, 0, 0), Prestige: 3},
	{ID: 905, Requirements: req(4, 0, 0, 0, 4), Prestige: 3},
	{ID: 906, Requirements: req(3, 3, 3, 0, 0), Prestige: 3},
	{ID: 907, Requirements: req(0, 3, 3, 3, 0), Prestige: 3},
	{ID: 908, Requirements: req(0, 0, 3, 3, 3), Prestige: 3},
	{ID: 909, Requirements: req(3, 0, 0, 3, 3), Prestige: 3},
	{ID: 910, Requirements: req(3, 3, 0, 0, 3), Prestige: 3},
}
