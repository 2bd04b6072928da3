package engine

// Tier bounds for development cards.
const (
	MinTier = 1
	MaxTier = 3
)

// Card is an immutable development card. Cost covers the five basic colors
// only (never gold); Bonus is the permanent discount color the card grants
// its owner. Cards come from a fixed catalog and are never mutated after
// game creation.
type Card struct {
	ID       int       `json:"id"`
	Tier     int       `json:"tier"`
	Cost     TokenBank `json:"cost"`
	Bonus    Gem       `json:"gemBonus"`
	Prestige int       `json:"prestige"`
}

// clone returns a copy with an independent cost bank. Cards are immutable by
// contract, but snapshots must not alias each other's maps.
func (c Card) clone() Card {
	c.Cost = c.Cost.Clone()
	return c
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c.clone()
	}
	return out
}

// Noble is an immutable noble tile. Requirements holds the minimum bonus
// count per color a player must own for the noble to visit.
type Noble struct {
	ID           int       `json:"id"`
	Requirements TokenBank `json:"requirements"`
	Prestige     int       `json:"prestige"`
}

func (n Noble) clone() Noble {
	n.Requirements = n.Requirements.Clone()
	return n
}

func cloneNobles(nobles []Noble) []Noble {
	if nobles == nil {
		return nil
	}
	out := make([]Noble, len(nobles))
	for i, n := range nobles {
		out[i] = n.clone()
	}
	return out
}
