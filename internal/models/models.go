// Package models holds the wire shapes the transport layer sends to clients.
// They mirror the engine's serialization contract, except that decks are
// reduced to remaining counts per tier: clients never learn draw order.
package models

import (
	"time"

	"github.com/Benjaminnnnnn/splendor-sub002/engine"
)

// Login is a request to log in.
type Login struct {
	ID       string `json:"id"`
	Password string `json:"pw"`
}

// TokenOut is an issued session token.
type TokenOut struct {
	Token string `json:"token"`
}

// BoardView is the shared table as seen by every player.
type BoardView struct {
	AvailableCards map[int][]engine.Card `json:"availableCards"`
	CardDecks      map[int]int           `json:"cardDecks"`
	Nobles         []engine.Noble        `json:"nobles"`
	Tokens         engine.TokenBank      `json:"tokens"`
}

// GameView is a full client-facing game snapshot.
type GameView struct {
	Players            []engine.Player  `json:"players"`
	Board              BoardView        `json:"board"`
	CurrentPlayerIndex int              `json:"currentPlayerIndex"`
	State              engine.GameState `json:"state"`
	EndTriggered       bool             `json:"endTriggered"`
	Winner             string           `json:"winner,omitempty"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// ViewOf projects a game snapshot into its client-facing view. The snapshot
// is already a private copy, so the view may alias it.
func ViewOf(g *engine.Game) GameView {
	return GameView{
		Players: g.Players,
		Board: BoardView{
			AvailableCards: g.Board.Available,
			CardDecks:      g.Board.DeckCounts(),
			Nobles:         g.Board.Nobles,
			Tokens:         g.Board.Tokens,
		},
		CurrentPlayerIndex: g.CurrentPlayer,
		State:              g.State,
		EndTriggered:       g.EndTriggered,
		Winner:             g.Winner,
		UpdatedAt:          g.UpdatedAt,
	}
}
