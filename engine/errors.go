package engine

import "errors"

// Every command failure wraps one of these sentinels, so callers can route on
// the category with errors.Is while still surfacing the wrapped reason string.
var (
	// ErrInvalidArgument marks a missing or malformed command field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTurnViolation marks a command from a player out of turn, or issued
	// against a finished game.
	ErrTurnViolation = errors.New("turn violation")

	// ErrRuleViolation marks a legal-state command that breaks a game rule:
	// an illegal token take, an unaffordable payment, or a card that is not
	// where the command claims it is.
	ErrRuleViolation = errors.New("rule violation")

	// ErrSetupViolation marks an invalid setup request: player count out of
	// range or a catalog too small for the requested deal.
	ErrSetupViolation = errors.New("setup violation")
)
