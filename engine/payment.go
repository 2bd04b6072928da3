package engine

// BonusCounts returns the player's permanent discounts: one per owned card,
// keyed by that card's bonus color. The returned bank carries only the five
// basic colors.
func (p *Player) BonusCounts() TokenBank {
	bonus := make(TokenBank, len(BasicGems))
	for _, g := range BasicGems {
		bonus[g] = 0
	}
	for _, c := range p.Cards {
		bonus[c.Bonus]++
	}
	return bonus
}

// OptimalPayment derives the cheapest token payment for card given the
// player's bonuses and held tokens. Per color, the amount still owed after
// bonuses is paid from held tokens of that color; any remaining shortfall
// across all colors is accumulated into gold. Zero entries are omitted.
//
// The result is a proposal only; it is not guaranteed affordable when the
// player lacks enough gold to cover the shortfall.
func OptimalPayment(p *Player, card Card) TokenBank {
	payment := make(TokenBank)
	bonus := p.BonusCounts()
	goldNeeded := 0
	for _, g := range BasicGems {
		needed := card.Cost[g] - bonus[g]
		if needed <= 0 {
			continue
		}
		pay := needed
		if held := p.Tokens[g]; held < pay {
			pay = held
		}
		if pay > 0 {
			payment[g] = pay
		}
		goldNeeded += needed - pay
	}
	if goldNeeded > 0 {
		payment[Gold] = goldNeeded
	}
	return payment
}

// CanAffordCard reports whether payment covers card's cost for this player.
//
// The player must actually hold every token the payment spends. Coverage then
// adds the player's bonuses to the proposed payment per color and requires
// the effective amount to meet each cost entry, with gold in the payment
// covering the aggregate shortfall as a wildcard pool. This is a coverage
// check, not an exact-change check: overpaying a color is fine, and payment
// amounts are not required to stay within that color's own cost once bonuses
// are summed in.
func CanAffordCard(p *Player, card Card, payment TokenBank) bool {
	if payment == nil {
		return false
	}
	for g, n := range payment {
		if !g.Valid() || n < 0 {
			return false
		}
		if p.Tokens[g] < n {
			return false
		}
	}
	bonus := p.BonusCounts()
	shortfall := 0
	for _, g := range BasicGems {
		effective := payment[g] + bonus[g]
		if effective < card.Cost[g] {
			shortfall += card.Cost[g] - effective
		}
	}
	return shortfall <= payment[Gold]
}
