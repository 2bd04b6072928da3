package room

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Benjaminnnnnn/splendor-sub002/internal/auth"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/models"
)

const writeTimeout = 10 * time.Second

// WSServer attaches WebSocket clients to rooms: it authenticates the
// connection, registers it for broadcasts and pumps incoming commands into
// the room. One server fronts every room in a hub.
type WSServer struct {
	hub  *Hub
	auth *auth.Service
	log  *logrus.Logger

	mu    sync.RWMutex
	conns map[uuid.UUID]map[*websocket.Conn]string // room -> conn -> player id
}

// NewWSServer builds the transport front for hub.
func NewWSServer(hub *Hub, auth *auth.Service, log *logrus.Logger) *WSServer {
	return &WSServer{hub: hub, auth: auth, log: log, conns: make(map[uuid.UUID]map[*websocket.Conn]string)}
}

// ServeHTTP upgrades ?room=<id>&token=<jwt> requests and serves the
// connection until the client leaves or the read fails.
func (s *WSServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	roomID, err := uuid.Parse(req.URL.Query().Get("room"))
	if err != nil {
		http.Error(w, "bad room id", http.StatusBadRequest)
		return
	}
	r, ok := s.hub.Room(roomID)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	playerID, err := s.auth.ParseToken(req.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if !r.HasPlayer(playerID) {
		http.Error(w, "not seated in this room", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, req, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket accept failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "closing")

	s.register(r, conn, playerID)
	defer s.unregister(r.ID, conn)

	// Initial sync so the client can render without waiting for a move.
	view := models.ViewOf(r.Snapshot())
	s.send(req.Context(), conn, Event{Type: EventGameState, State: &view})

	s.readLoop(req.Context(), r, conn, playerID)
	conn.Close(websocket.StatusNormalClosure, "bye")
}

// readLoop decodes commands off the wire and applies them. The player field
// is always stamped from the authenticated identity; clients cannot act for
// another seat.
func (s *WSServer) readLoop(ctx context.Context, r *Room, conn *websocket.Conn, playerID string) {
	for {
		var cmd Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return
			}
			s.log.WithError(err).WithField("player", playerID).Debug("websocket read ended")
			return
		}
		cmd.PlayerID = playerID
		// Rejections are reported to the player via the error event inside
		// Apply; nothing more to do here.
		_ = r.Apply(ctx, cmd)
	}
}

func (s *WSServer) register(r *Room, conn *websocket.Conn, playerID string) {
	s.mu.Lock()
	if s.conns[r.ID] == nil {
		s.conns[r.ID] = make(map[*websocket.Conn]string)
		s.wireBroadcasts(r)
	}
	s.conns[r.ID][conn] = playerID
	s.mu.Unlock()
}

func (s *WSServer) unregister(roomID uuid.UUID, conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.conns[roomID], conn)
	s.mu.Unlock()
}

// wireBroadcasts points the room's callbacks at this server's connection set.
// Caller holds the lock and runs at most once per room.
func (s *WSServer) wireBroadcasts(r *Room) {
	r.BroadcastFn = func(ev Event) {
		s.mu.RLock()
		targets := make([]*websocket.Conn, 0, len(s.conns[r.ID]))
		for c := range s.conns[r.ID] {
			targets = append(targets, c)
		}
		s.mu.RUnlock()
		for _, c := range targets {
			s.send(context.Background(), c, ev)
		}
	}
	r.BroadcastToPlayerFn = func(playerID string, ev Event) {
		s.mu.RLock()
		var targets []*websocket.Conn
		for c, pid := range s.conns[r.ID] {
			if pid == playerID {
				targets = append(targets, c)
			}
		}
		s.mu.RUnlock()
		for _, c := range targets {
			s.send(context.Background(), c, ev)
		}
	}
}

func (s *WSServer) send(ctx context.Context, conn *websocket.Conn, ev Event) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := wsjson.Write(ctx, conn, ev); err != nil {
		s.log.WithError(err).Debug("websocket write failed")
	}
}
