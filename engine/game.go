package engine

import (
	"fmt"
	"time"
)

// WinPrestige is the prestige threshold that arms the end-trigger round.
const WinPrestige = 15

// GameState is the lifecycle state of a game.
type GameState string

const (
	StateInProgress GameState = "IN_PROGRESS"
	StateFinished   GameState = "FINISHED"
)

// Player holds one seat's tokens, purchases, reservations and nobles.
// Prestige is cached but always recomputable as the sum of owned cards' and
// nobles' prestige.
type Player struct {
	ID       string    `json:"id"`
	Tokens   TokenBank `json:"tokens"`
	Cards    []Card    `json:"cards"` // acquisition order
	Reserved []Card    `json:"reservedCards"`
	Nobles   []Noble   `json:"nobles"`
	Prestige int       `json:"prestige"`
}

func (p *Player) clone() Player {
	return Player{
		ID:       p.ID,
		Tokens:   p.Tokens.Clone(),
		Cards:    cloneCards(p.Cards),
		Reserved: cloneCards(p.Reserved),
		Nobles:   cloneNobles(p.Nobles),
		Prestige: p.Prestige,
	}
}

// Game is a full game snapshot. Commands never mutate their receiver: each
// one clones the snapshot, applies the transition to the clone and returns
// it, so the input stays valid for audit logs, undo or spectating.
type Game struct {
	Players         []Player  `json:"players"`
	Board           Board     `json:"board"`
	CurrentPlayer   int       `json:"currentPlayerIndex"`
	State           GameState `json:"state"`
	EndTriggered    bool      `json:"endTriggered"`
	EndTriggerIndex int       `json:"endTriggerPlayerIndex"`
	Winner          string    `json:"winner,omitempty"` // player id, empty until finished
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (g *Game) Clone() *Game {
	out := *g
	out.Players = make([]Player, len(g.Players))
	for i := range g.Players {
		out.Players[i] = g.Players[i].clone()
	}
	out.Board = g.Board.Clone()
	return &out
}

// IsPlayerTurn reports whether the game is still running and playerID holds
// the current seat.
func (g *Game) IsPlayerTurn(playerID string) bool {
	return g.State == StateInProgress && g.Players[g.CurrentPlayer].ID == playerID
}

// PlayerByID returns the seat with the given id.
func (g *Game) PlayerByID(playerID string) (*Player, bool) {
	for i := range g.Players {
		if g.Players[i].ID == playerID {
			return &g.Players[i], true
		}
	}
	return nil, false
}

func (g *Game) currentPlayer() *Player {
	return &g.Players[g.CurrentPlayer]
}

// commit stamps the snapshot and finishes the game if the end-trigger round
// has come full circle. Called after the turn has advanced.
func (g *Game) commit(now time.Time) {
	g.finishIfRoundComplete()
	g.UpdatedAt = now
}

// TakeTokens transfers the requested tokens from the bank to the current
// player and advances the turn. The request must be a legal take shape per
// IsValidTokenTake.
func (g *Game) TakeTokens(playerID string, tokens TokenBank) (*Game, error) {
	if playerID == "" || tokens == nil {
		return nil, fmt.Errorf("%w: player id and tokens are required", ErrInvalidArgument)
	}
	if !g.IsPlayerTurn(playerID) {
		return nil, fmt.Errorf("%w: not %s's turn", ErrTurnViolation, playerID)
	}
	if !IsValidTokenTake(tokens, g.Board.Tokens) {
		return nil, fmt.Errorf("%w: illegal token selection", ErrRuleViolation)
	}

	next := g.Clone()
	p := next.currentPlayer()
	for gem, n := range tokens {
		if n <= 0 {
			continue
		}
		next.Board.Tokens[gem] -= n
		p.Tokens[gem] += n
	}
	next.nextTurn()
	next.commit(time.Now().UTC())
	return next, nil
}

// PurchaseCard buys a face-up card for the current player. A nil payment is
// derived via OptimalPayment; either way the payment must afford the card.
func (g *Game) PurchaseCard(playerID string, cardID int, payment TokenBank) (*Game, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidArgument)
	}
	if !g.IsPlayerTurn(playerID) {
		return nil, fmt.Errorf("%w: not %s's turn", ErrTurnViolation, playerID)
	}
	card, ok := g.Board.findAvailable(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: card %d is not on the board", ErrRuleViolation, cardID)
	}
	player := g.currentPlayer()
	if payment == nil {
		payment = OptimalPayment(player, card)
	}
	if !CanAffordCard(player, card, payment) {
		return nil, fmt.Errorf("%w: cannot afford card %d", ErrRuleViolation, cardID)
	}

	next := g.Clone()
	p := next.currentPlayer()
	next.payForCard(p, payment)
	next.removeCardFromBoard(card)
	p.Cards = append(p.Cards, card.clone())
	p.Prestige += card.Prestige
	next.checkNobleVisits(p)
	next.checkWinCondition(p)
	next.nextTurn()
	next.commit(time.Now().UTC())
	return next, nil
}

// ReserveCard moves a face-up card into the current player's reserve and
// grants one gold token while the bank has any.
func (g *Game) ReserveCard(playerID string, cardID int) (*Game, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidArgument)
	}
	if !g.IsPlayerTurn(playerID) {
		return nil, fmt.Errorf("%w: not %s's turn", ErrTurnViolation, playerID)
	}
	card, ok := g.Board.findAvailable(cardID)
	if !ok {
		return nil, fmt.Errorf("%w: card %d is not on the board", ErrRuleViolation, cardID)
	}

	next := g.Clone()
	p := next.currentPlayer()
	if next.Board.Tokens[Gold] > 0 {
		next.Board.Tokens[Gold]--
		p.Tokens[Gold]++
	}
	next.removeCardFromBoard(card)
	p.Reserved = append(p.Reserved, card.clone())
	next.nextTurn()
	next.commit(time.Now().UTC())
	return next, nil
}

// PurchaseReservedCard buys a card out of the current player's own reserve.
// One gold returns from the player to the bank alongside the payment, clamped
// at zero on the player side.
func (g *Game) PurchaseReservedCard(playerID string, cardID int, payment TokenBank) (*Game, error) {
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidArgument)
	}
	if !g.IsPlayerTurn(playerID) {
		return nil, fmt.Errorf("%w: not %s's turn", ErrTurnViolation, playerID)
	}
	player := g.currentPlayer()
	reservedIdx := -1
	for i, c := range player.Reserved {
		if c.ID == cardID {
			reservedIdx = i
			break
		}
	}
	if reservedIdx < 0 {
		return nil, fmt.Errorf("%w: card %d is not in %s's reserve", ErrRuleViolation, cardID, playerID)
	}
	card := player.Reserved[reservedIdx]
	if payment == nil {
		payment = OptimalPayment(player, card)
	}
	if !CanAffordCard(player, card, payment) {
		return nil, fmt.Errorf("%w: cannot afford card %d", ErrRuleViolation, cardID)
	}

	next := g.Clone()
	p := next.currentPlayer()
	next.payForCard(p, payment)
	p.Reserved = append(p.Reserved[:reservedIdx], p.Reserved[reservedIdx+1:]...)
	p.Cards = append(p.Cards, card.clone())
	p.Prestige += card.Prestige
	if p.Tokens[Gold] > 0 {
		p.Tokens[Gold]--
		next.Board.Tokens[Gold]++
	}
	next.checkNobleVisits(p)
	next.checkWinCondition(p)
	next.nextTurn()
	next.commit(time.Now().UTC())
	return next, nil
}
