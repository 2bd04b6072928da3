package room

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Benjaminnnnnn/splendor-sub002/engine"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/catalog"
)

// Hub is the registry of running rooms. Rooms are independent: the hub's
// lock guards the registry only, never game state, so commands in different
// rooms proceed fully in parallel.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]*Room

	store Store
	cache Cache
	log   *logrus.Logger
}

// NewHub creates an empty registry. store and cache may be nil.
func NewHub(store Store, cache Cache, log *logrus.Logger) *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]*Room),
		store: store,
		cache: cache,
		log:   log,
	}
}

// CreateRoom starts a game for the given seats, dealt from the standard
// catalog, and registers its room. Seat order is turn order.
func (h *Hub) CreateRoom(playerIDs []string) (*Room, error) {
	game, err := engine.NewGame(playerIDs, catalog.Cards(), catalog.Nobles(), nil)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	r := New(game, h.store, h.cache, h.log)
	r.OnGameEnd = func(roomID uuid.UUID, winnerID string) {
		h.log.WithFields(logrus.Fields{"room": roomID, "winner": winnerID}).Info("game finished")
	}

	h.mu.Lock()
	h.rooms[r.ID] = r
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{"room": r.ID, "players": playerIDs}).Info("room created")
	return r, nil
}

// Room looks up a running room by id.
func (h *Hub) Room(id uuid.UUID) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	return r, ok
}

// Remove drops a room from the registry.
func (h *Hub) Remove(id uuid.UUID) {
	h.mu.Lock()
	delete(h.rooms, id)
	h.mu.Unlock()
}
