// Command splendord serves Splendor games: rooms are created over HTTP,
// played over WebSockets, and every committed move is persisted to Postgres
// and mirrored into Redis.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Benjaminnnnnn/splendor-sub002/internal/auth"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/cache"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/database"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/models"
	"github.com/Benjaminnnnnn/splendor-sub002/internal/room"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file, using process environment")
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(getenv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store *database.Store
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		s, err := database.Connect(ctx, dsn)
		if err != nil {
			log.WithError(err).Fatal("connect to postgres")
		}
		defer s.Close()
		if err := s.EnsureSchema(ctx); err != nil {
			log.WithError(err).Fatal("apply schema")
		}
		store = s
		log.Info("postgres connected")
	} else {
		log.Warn("DATABASE_URL unset; running without persistence")
	}

	var snapCache *cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		db, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
		ttl, err := time.ParseDuration(getenv("SNAPSHOT_TTL", "24h"))
		if err != nil {
			log.WithError(err).Fatal("parse SNAPSHOT_TTL")
		}
		c := cache.New(addr, os.Getenv("REDIS_PASSWORD"), db, ttl)
		if err := c.Ping(ctx); err != nil {
			log.WithError(err).Fatal("connect to redis")
		}
		defer c.Close()
		snapCache = c
		log.Info("redis connected")
	} else {
		log.Warn("REDIS_ADDR unset; running without snapshot cache")
	}

	tokenTTL, err := time.ParseDuration(getenv("TOKEN_TTL", "12h"))
	if err != nil {
		log.WithError(err).Fatal("parse TOKEN_TTL")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := auth.New(secret, tokenTTL)

	// Interface values must stay nil when the concrete pointer is nil.
	var roomStore room.Store
	if store != nil {
		roomStore = store
	}
	var roomCache room.Cache
	if snapCache != nil {
		roomCache = snapCache
	}
	hub := room.NewHub(roomStore, roomCache, log)
	api := &api{hub: hub, store: store, tokens: tokens, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("POST /register", api.handleRegister)
	mux.HandleFunc("POST /login", api.handleLogin)
	mux.HandleFunc("POST /rooms", api.handleCreateRoom)
	mux.HandleFunc("GET /rooms/{id}", api.handleGetRoom)
	mux.Handle("GET /ws", room.NewWSServer(hub, tokens, log))

	srv := &http.Server{
		Addr:              ":" + getenv("PORT", "8080"),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithField("addr", srv.Addr).Info("splendord listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("serve")
	}
}

type api struct {
	hub    *room.Hub
	store  *database.Store
	tokens *auth.Service
	log    *logrus.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *api) handleRegister(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		http.Error(w, "no user store configured", http.StatusServiceUnavailable)
		return
	}
	var in models.Login
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.ID == "" || in.Password == "" {
		http.Error(w, "id and pw are required", http.StatusBadRequest)
		return
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		http.Error(w, "hash failure", http.StatusInternalServerError)
		return
	}
	if err := a.store.CreateUser(r.Context(), in.ID, hash); err != nil {
		a.log.WithError(err).WithField("user", in.ID).Warn("register failed")
		http.Error(w, "could not create user", http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (a *api) handleLogin(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		http.Error(w, "no user store configured", http.StatusServiceUnavailable)
		return
	}
	var in models.Login
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.ID == "" {
		http.Error(w, "id and pw are required", http.StatusBadRequest)
		return
	}
	hash, err := a.store.UserHash(r.Context(), in.ID)
	if err != nil || !auth.CheckPassword(hash, in.Password) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
		return
	}
	token, err := a.tokens.IssueToken(in.ID)
	if err != nil {
		http.Error(w, "token failure", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, models.TokenOut{Token: token})
}

func (a *api) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Players []string `json:"players"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "players list is required", http.StatusBadRequest)
		return
	}
	rm, err := a.hub.CreateRoom(in.Players)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		ID string `json:"id"`
	}{ID: rm.ID.String()})
}

func (a *api) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "bad room id", http.StatusBadRequest)
		return
	}
	rm, ok := a.hub.Room(id)
	if !ok {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, models.ViewOf(rm.Snapshot()))
}
