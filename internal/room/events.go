package room

import (
	"github.com/Benjaminnnnnn/splendor-sub002/engine"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/models"
)

// CommandType identifies a player-issued command.
type CommandType string

const (
	CmdTakeTokens       CommandType = "take_tokens"
	CmdPurchaseCard     CommandType = "purchase_card"
	CmdReserveCard      CommandType = "reserve_card"
	CmdPurchaseReserved CommandType = "purchase_reserved_card"
)

// Command is one player action as read off the wire. Tokens and Payment are
// partial banks; Payment may be omitted to let the engine derive one.
type Command struct {
	Type     CommandType      `json:"type"`
	PlayerID string           `json:"playerId"`
	Tokens   engine.TokenBank `json:"tokens,omitempty"`
	CardID   int              `json:"cardId,omitempty"`
	Payment  engine.TokenBank `json:"payment,omitempty"`
}

// EventType represents the type of a game-related event broadcast to clients.
type EventType string

const (
	// EventGameState carries the full snapshot view after a committed command.
	EventGameState EventType = "game_state"
	// EventGameEnd announces the winner once the end-trigger round completes.
	EventGameEnd EventType = "game_end"
	// EventError is sent only to the offending player after a rejected command.
	EventError EventType = "error"
)

// LastAction echoes the command that produced a state event, so clients can
// animate the transition (which tokens moved, which card changed hands).
type LastAction struct {
	Type     CommandType      `json:"type"`
	PlayerID string           `json:"playerId"`
	Tokens   engine.TokenBank `json:"tokens,omitempty"`
	CardID   int              `json:"cardId,omitempty"`
}

// Event is the standard structure for broadcasting game state changes.
type Event struct {
	Type       EventType        `json:"type"`
	State      *models.GameView `json:"state,omitempty"`
	LastAction *LastAction      `json:"lastAction,omitempty"`
	Winner     string           `json:"winner,omitempty"`
	Reason     string           `json:"reason,omitempty"` // human-readable, error events only
}
