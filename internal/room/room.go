// Package room hosts one running game per room: it serializes player
// commands onto the engine, persists committed snapshots and fans events out
// to connected clients. The engine assumes a single writer per Game value;
// the room's mutex is what provides that guarantee.
package room

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Benjaminnnnnn/splendor-sub002/engine"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/models"
)

// Store persists committed snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, id uuid.UUID, g *engine.Game) error
}

// Cache mirrors the newest snapshot for cheap spectator and rejoin reads.
type Cache interface {
	PutSnapshot(ctx context.Context, id uuid.UUID, g *engine.Game) error
}

// OnGameEndFunc runs once when a room's game finishes.
type OnGameEndFunc func(roomID uuid.UUID, winnerID string)

const persistTimeout = 5 * time.Second

// Room owns the authoritative snapshot of a single game instance.
type Room struct {
	ID uuid.UUID

	mu   sync.Mutex
	game *engine.Game

	store Store // optional
	cache Cache // optional
	log   *logrus.Entry

	// Communication callbacks, wired by the transport layer.
	BroadcastFn         func(ev Event)
	BroadcastToPlayerFn func(playerID string, ev Event)
	OnGameEnd           OnGameEndFunc
}

// New wraps a freshly created game in a room. store and cache may be nil.
func New(game *engine.Game, store Store, cache Cache, log *logrus.Logger) *Room {
	id := uuid.New()
	return &Room{
		ID:    id,
		game:  game,
		store: store,
		cache: cache,
		log:   log.WithField("room", id),
	}
}

// Snapshot returns a private copy of the current game state.
func (r *Room) Snapshot() *engine.Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.game.Clone()
}

// HasPlayer reports whether playerID holds a seat in this room's game.
func (r *Room) HasPlayer(playerID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.game.PlayerByID(playerID)
	return ok
}

// Apply runs one command against the game. Commands are serialized by the
// room's mutex: one in flight at a time, in arrival order. On success the
// room swaps to the new snapshot, persists it best-effort and broadcasts the
// resulting state; on rejection the input state is untouched and only the
// offending player is notified.
func (r *Room) Apply(ctx context.Context, cmd Command) error {
	r.mu.Lock()
	next, err := r.dispatch(cmd)
	if err != nil {
		r.mu.Unlock()
		r.log.WithError(err).WithFields(logrus.Fields{
			"player":  cmd.PlayerID,
			"command": cmd.Type,
		}).Info("command rejected")
		r.notifyPlayer(cmd.PlayerID, Event{Type: EventError, Reason: err.Error()})
		return err
	}
	r.game = next
	finished := next.State == engine.StateFinished
	winner := next.Winner
	view := models.ViewOf(next.Clone())
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{
		"player":  cmd.PlayerID,
		"command": cmd.Type,
	}).Info("command applied")

	r.persist(ctx, next)
	r.broadcast(Event{
		Type:  EventGameState,
		State: &view,
		LastAction: &LastAction{
			Type:     cmd.Type,
			PlayerID: cmd.PlayerID,
			Tokens:   cmd.Tokens,
			CardID:   cmd.CardID,
		},
	})
	if finished {
		r.broadcast(Event{Type: EventGameEnd, Winner: winner})
		if r.OnGameEnd != nil {
			r.OnGameEnd(r.ID, winner)
		}
	}
	return nil
}

// dispatch routes a command to its engine transition. Caller holds the lock.
func (r *Room) dispatch(cmd Command) (*engine.Game, error) {
	switch cmd.Type {
	case CmdTakeTokens:
		return r.game.TakeTokens(cmd.PlayerID, cmd.Tokens)
	case CmdPurchaseCard:
		return r.game.PurchaseCard(cmd.PlayerID, cmd.CardID, cmd.Payment)
	case CmdReserveCard:
		return r.game.ReserveCard(cmd.PlayerID, cmd.CardID)
	case CmdPurchaseReserved:
		return r.game.PurchaseReservedCard(cmd.PlayerID, cmd.CardID, cmd.Payment)
	default:
		return nil, fmt.Errorf("%w: unknown command type %q", engine.ErrInvalidArgument, cmd.Type)
	}
}

// persist writes the committed snapshot to the store and cache. The command
// has already committed, so failures are logged and the game plays on.
func (r *Room) persist(ctx context.Context, g *engine.Game) {
	if r.store == nil && r.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if r.store != nil {
		if err := r.store.SaveSnapshot(ctx, r.ID, g); err != nil {
			r.log.WithError(err).Warn("snapshot store write failed")
		}
	}
	if r.cache != nil {
		if err := r.cache.PutSnapshot(ctx, r.ID, g); err != nil {
			r.log.WithError(err).Warn("snapshot cache write failed")
		}
	}
}

func (r *Room) broadcast(ev Event) {
	if r.BroadcastFn != nil {
		r.BroadcastFn(ev)
	}
}

func (r *Room) notifyPlayer(playerID string, ev Event) {
	if r.BroadcastToPlayerFn != nil {
		r.BroadcastToPlayerFn(playerID, ev)
	}
}
