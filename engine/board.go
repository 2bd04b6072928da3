package engine

// Board holds the shared table state: the face-up card rows, the remaining
// tier decks, the unclaimed nobles and the token bank.
type Board struct {
	// Available maps tier to its face-up row, up to four cards.
	Available map[int][]Card `json:"availableCards"`
	// Decks maps tier to the remaining face-down cards in draw order. The
	// order is fixed by the setup shuffle; removing a face-up card pops the
	// next deck card into the vacated slot.
	Decks map[int][]Card `json:"cardDecks"`
	// Nobles are the tiles still on the table.
	Nobles []Noble `json:"nobles"`
	// Tokens is the bank, canonical (all six colors present).
	Tokens TokenBank `json:"tokens"`
}

// Clone returns a deep copy sharing no maps or slices with the receiver.
func (b *Board) Clone() Board {
	out := Board{
		Available: make(map[int][]Card, len(b.Available)),
		Decks:     make(map[int][]Card, len(b.Decks)),
		Nobles:    cloneNobles(b.Nobles),
		Tokens:    b.Tokens.Clone(),
	}
	for tier, row := range b.Available {
		out.Available[tier] = cloneCards(row)
	}
	for tier, deck := range b.Decks {
		out.Decks[tier] = cloneCards(deck)
	}
	return out
}

// DeckCounts returns the remaining face-down card count per tier.
func (b *Board) DeckCounts() map[int]int {
	counts := make(map[int]int, len(b.Decks))
	for tier, deck := range b.Decks {
		counts[tier] = len(deck)
	}
	return counts
}

// findAvailable returns the face-up card with the given id, if present.
func (b *Board) findAvailable(cardID int) (Card, bool) {
	for _, row := range b.Available {
		for _, c := range row {
			if c.ID == cardID {
				return c, true
			}
		}
	}
	return Card{}, false
}

// payForCard moves the payment from the player to the bank. Affordability
// must already have been validated; this primitive trusts its caller.
func (g *Game) payForCard(p *Player, payment TokenBank) {
	for gem, n := range payment {
		if n <= 0 {
			continue
		}
		p.Tokens[gem] -= n
		g.Board.Tokens[gem] += n
	}
}

// removeCardFromBoard takes the card off its tier row by id, refilling the
// vacated slot in place from the tier deck while cards remain; once the deck
// is exhausted the row shrinks instead.
func (g *Game) removeCardFromBoard(card Card) {
	row := g.Board.Available[card.Tier]
	for i, c := range row {
		if c.ID != card.ID {
			continue
		}
		deck := g.Board.Decks[card.Tier]
		if len(deck) > 0 {
			row[i] = deck[0]
			g.Board.Decks[card.Tier] = deck[1:]
		} else {
			g.Board.Available[card.Tier] = append(row[:i], row[i+1:]...)
		}
		return
	}
}

// checkNobleVisits awards at most one noble: the first tile in board order
// whose requirements the player's bonuses meet. Even a player qualifying for
// several nobles at once receives only one per check.
func (g *Game) checkNobleVisits(p *Player) {
	bonus := p.BonusCounts()
	for i, noble := range g.Board.Nobles {
		qualified := true
		for gem, required := range noble.Requirements {
			if bonus[gem] < required {
				qualified = false
				break
			}
		}
		if !qualified {
			continue
		}
		g.Board.Nobles = append(g.Board.Nobles[:i], g.Board.Nobles[i+1:]...)
		p.Nobles = append(p.Nobles, noble)
		p.Prestige += noble.Prestige
		return
	}
}

// checkWinCondition arms the end-trigger the first time a player reaches the
// prestige threshold, recording the triggering player's seat before the turn
// advances so every player gets an equal number of turns.
func (g *Game) checkWinCondition(p *Player) {
	if g.EndTriggered || p.Prestige < WinPrestige {
		return
	}
	g.EndTriggered = true
	g.EndTriggerIndex = g.CurrentPlayer
}

// nextTurn advances the current player modulo the player count.
func (g *Game) nextTurn() {
	g.CurrentPlayer = (g.CurrentPlayer + 1) % len(g.Players)
}

// finishIfRoundComplete transitions the game to FINISHED once the turn index
// has come full circle back to the seat that triggered the end. The winner is
// the player with the most prestige, ties broken by fewest owned cards.
func (g *Game) finishIfRoundComplete() {
	if !g.EndTriggered || g.CurrentPlayer != g.EndTriggerIndex {
		return
	}
	g.State = StateFinished
	winner := 0
	for i := 1; i < len(g.Players); i++ {
		p, best := &g.Players[i], &g.Players[winner]
		if p.Prestige > best.Prestige ||
			(p.Prestige == best.Prestige && len(p.Cards) < len(best.Cards)) {
			winner = i
		}
	}
	g.Winner = g.Players[winner].ID
}
