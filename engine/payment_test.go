package engine

import (
	"reflect"
	"testing"
)

// testPlayer builds a player holding the given tokens and owning one bonus
// card per entry in bonuses.
func testPlayer(tokens TokenBank, bonuses ...Gem) *Player {
	p := &Player{ID: "p1", Tokens: NewTokenBank()}
	for g, n := range tokens {
		p.Tokens[g] = n
	}
	for i, g := range bonuses {
		p.Cards = append(p.Cards, Card{ID: 1000 + i, Tier: 1, Bonus: g, Cost: TokenBank{}})
	}
	return p
}

func TestOptimalPayment(t *testing.T) {
	tests := []struct {
		name    string
		player  *Player
		card    Card
		want    TokenBank
	}{
		{
			name:   "pays cost directly from held tokens",
			player: testPlayer(TokenBank{Ruby: 3, Onyx: 2}),
			card:   Card{ID: 1, Cost: TokenBank{Ruby: 2, Onyx: 1}},
			want:   TokenBank{Ruby: 2, Onyx: 1},
		},
		{
			name:   "bonuses reduce the amount owed",
			player: testPlayer(TokenBank{Ruby: 3}, Ruby, Ruby),
			card:   Card{ID: 2, Cost: TokenBank{Ruby: 3}},
			want:   TokenBank{Ruby: 1},
		},
		{
			name:   "bonuses cover everything",
			player: testPlayer(TokenBank{}, Emerald, Emerald, Emerald),
			card:   Card{ID: 3, Cost: TokenBank{Emerald: 3}},
			want:   TokenBank{},
		},
		{
			name:   "shortfall accumulates into gold",
			player: testPlayer(TokenBank{Ruby: 1, Gold: 3}),
			card:   Card{ID: 4, Cost: TokenBank{Ruby: 2, Onyx: 2}},
			want:   TokenBank{Ruby: 1, Gold: 3},
		},
		{
			name:   "gold shortfall even without held gold",
			player: testPlayer(TokenBank{}),
			card:   Card{ID: 5, Cost: TokenBank{Sapphire: 2}},
			want:   TokenBank{Gold: 2},
		},
		{
			name:   "zero entries are omitted",
			player: testPlayer(TokenBank{Diamond: 4}),
			card:   Card{ID: 6, Cost: TokenBank{Diamond: 1, Sapphire: 0}},
			want:   TokenBank{Diamond: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptimalPayment(tt.player, tt.card)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OptimalPayment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanAffordCard(t *testing.T) {
	tests := []struct {
		name    string
		player  *Player
		card    Card
		payment TokenBank
		want    bool
	}{
		{
			name:    "exact payment",
			player:  testPlayer(TokenBank{Ruby: 2}),
			card:    Card{ID: 1, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Ruby: 2},
			want:    true,
		},
		{
			name:    "payment spends tokens not held",
			player:  testPlayer(TokenBank{Ruby: 1}),
			card:    Card{ID: 2, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Ruby: 2},
			want:    false,
		},
		{
			name:    "bonuses close the gap",
			player:  testPlayer(TokenBank{Ruby: 1}, Ruby),
			card:    Card{ID: 3, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Ruby: 1},
			want:    true,
		},
		{
			name:    "gold covers another color's shortfall",
			player:  testPlayer(TokenBank{Ruby: 1, Gold: 2}),
			card:    Card{ID: 4, Cost: TokenBank{Ruby: 2, Onyx: 1}},
			payment: TokenBank{Ruby: 1, Gold: 2},
			want:    true,
		},
		{
			name:    "gold short of the aggregate shortfall",
			player:  testPlayer(TokenBank{Gold: 1}),
			card:    Card{ID: 5, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Gold: 1},
			want:    false,
		},
		{
			name:    "underpayment with no bonuses",
			player:  testPlayer(TokenBank{Ruby: 2}),
			card:    Card{ID: 6, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Ruby: 1},
			want:    false,
		},
		{
			name:    "nil payment",
			player:  testPlayer(TokenBank{Ruby: 2}),
			card:    Card{ID: 7, Cost: TokenBank{Ruby: 2}},
			payment: nil,
			want:    false,
		},
		{
			name:    "negative payment entry",
			player:  testPlayer(TokenBank{Ruby: 2}),
			card:    Card{ID: 8, Cost: TokenBank{Ruby: 2}},
			payment: TokenBank{Ruby: 2, Onyx: -1},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAffordCard(tt.player, tt.card, tt.payment); got != tt.want {
				t.Errorf("CanAffordCard() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Affordability is a coverage check, not exact change: overpaying a color
// passes, and bonuses count per color regardless of how the proposed payment
// is broken down. Deliberate behavior; do not tighten.
func TestCanAffordCardOverpaymentAllowed(t *testing.T) {
	p := testPlayer(TokenBank{Ruby: 5}, Ruby, Ruby)
	card := Card{ID: 9, Cost: TokenBank{Ruby: 3}}

	// 5 paid + 2 bonus = 7 effective against a cost of 3.
	if !CanAffordCard(p, card, TokenBank{Ruby: 5}) {
		t.Error("overpayment rejected; affordability must not require exact change")
	}
}

func TestCanAffordCardPure(t *testing.T) {
	p := testPlayer(TokenBank{Ruby: 2, Gold: 1}, Ruby)
	card := Card{ID: 10, Cost: TokenBank{Ruby: 3}}
	payment := TokenBank{Ruby: 2}

	first := CanAffordCard(p, card, payment)
	second := CanAffordCard(p, card, payment)
	if first != second {
		t.Fatalf("repeated calls disagree: %v then %v", first, second)
	}
	if p.Tokens[Ruby] != 2 || p.Tokens[Gold] != 1 {
		t.Errorf("player tokens mutated: %v", p.Tokens)
	}
	if payment[Ruby] != 2 || len(payment) != 1 {
		t.Errorf("payment mutated: %v", payment)
	}
}
