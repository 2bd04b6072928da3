package engine

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Face-up row width and starting gold per the official setup.
const (
	BoardRowSize = 4
	StartingGold = 5
)

// startingTokens is the per-color bank size by player count.
var startingTokens = map[int]int{2: 4, 3: 5, 4: 7}

// newRNG returns rng, or a time-seeded fallback when rng is nil. Callers who
// need determinism (tests, replays) pass their own seeded source.
func newRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// shuffle is an in-place Fisher-Yates permutation.
func shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// InitializeBoard builds the starting table for the given player count: the
// official token bank (2 players → 4 of each basic color, 3 → 5, 4 → 7; gold
// always 5), four face-up cards per tier dealt from a shuffled copy of the
// card catalog, the rest forming the tier decks in draw order, and
// playerCount+1 nobles drawn from the noble catalog.
func InitializeBoard(playerCount int, cards []Card, nobles []Noble, rng *rand.Rand) (Board, error) {
	perColor, ok := startingTokens[playerCount]
	if !ok {
		return Board{}, fmt.Errorf("%w: player count must be 2-4, got %d", ErrSetupViolation, playerCount)
	}
	rng = newRNG(rng)

	tokens := NewTokenBank()
	for _, g := range BasicGems {
		tokens[g] = perColor
	}
	tokens[Gold] = StartingGold

	byTier := make(map[int][]Card, MaxTier)
	for _, c := range cards {
		if c.Tier < MinTier || c.Tier > MaxTier {
			return Board{}, fmt.Errorf("%w: card %d has tier %d", ErrSetupViolation, c.ID, c.Tier)
		}
		byTier[c.Tier] = append(byTier[c.Tier], c.clone())
	}

	board := Board{
		Available: make(map[int][]Card, MaxTier),
		Decks:     make(map[int][]Card, MaxTier),
		Tokens:    tokens,
	}
	for tier := MinTier; tier <= MaxTier; tier++ {
		deck := byTier[tier]
		if len(deck) < BoardRowSize {
			return Board{}, fmt.Errorf("%w: tier %d has %d cards, need at least %d",
				ErrSetupViolation, tier, len(deck), BoardRowSize)
		}
		shuffle(deck, rng)
		face := make([]Card, BoardRowSize)
		copy(face, deck[:BoardRowSize])
		board.Available[tier] = face
		board.Decks[tier] = append([]Card(nil), deck[BoardRowSize:]...)
	}

	drawn, err := DrawNobles(playerCount, nobles, rng)
	if err != nil {
		return Board{}, err
	}
	board.Nobles = drawn
	return board, nil
}

// DrawNobles draws playerCount+1 nobles from a shuffled copy of the catalog.
func DrawNobles(playerCount int, nobles []Noble, rng *rand.Rand) ([]Noble, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("%w: player count must be 2-4, got %d", ErrSetupViolation, playerCount)
	}
	want := playerCount + 1
	if len(nobles) < want {
		return nil, fmt.Errorf("%w: need %d nobles, catalog has %d", ErrSetupViolation, want, len(nobles))
	}
	pool := cloneNobles(nobles)
	shuffle(pool, newRNG(rng))
	return pool[:want], nil
}

// DealNobles replaces the table's nobles with a fresh draw sized to the
// player count, returning a new snapshot.
func (g *Game) DealNobles(nobles []Noble, rng *rand.Rand) (*Game, error) {
	drawn, err := DrawNobles(len(g.Players), nobles, rng)
	if err != nil {
		return nil, err
	}
	next := g.Clone()
	next.Board.Nobles = drawn
	next.UpdatedAt = time.Now().UTC()
	return next, nil
}

// NewGame creates a game for the given seats, in turn order, with a freshly
// initialized board.
func NewGame(playerIDs []string, cards []Card, nobles []Noble, rng *rand.Rand) (*Game, error) {
	if len(playerIDs) < 2 || len(playerIDs) > 4 {
		return nil, fmt.Errorf("%w: player count must be 2-4, got %d", ErrSetupViolation, len(playerIDs))
	}
	for _, id := range playerIDs {
		if id == "" {
			return nil, fmt.Errorf("%w: empty player id", ErrInvalidArgument)
		}
	}
	board, err := InitializeBoard(len(playerIDs), cards, nobles, rng)
	if err != nil {
		return nil, err
	}

	players := make([]Player, len(playerIDs))
	for i, id := range playerIDs {
		players[i] = Player{ID: id, Tokens: NewTokenBank()}
	}
	return &Game{
		Players:         players,
		Board:           board,
		CurrentPlayer:   0,
		State:           StateInProgress,
		EndTriggerIndex: -1,
		UpdatedAt:       time.Now().UTC(),
	}, nil
}
