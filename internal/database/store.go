// Package database persists users and game snapshots in Postgres. Snapshots
// are stored whole as JSONB: every committed command produces a complete,
// self-contained game state, so row-per-entity decomposition buys nothing
// the engine's serialization contract doesn't already give us.
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Benjaminnnnnn/splendor-sub002/engine"
)

// ErrNotFound marks a lookup for a row that does not exist.
var ErrNotFound = errors.New("not found")

var schema = []string{
	// One entry per named user, irrespective of game.
	`CREATE TABLE IF NOT EXISTS users (
		id   varchar(256) PRIMARY KEY,
		hash varchar(256) NOT NULL
	)`,
	// One row per game, latest snapshot inline.
	`CREATE TABLE IF NOT EXISTS games (
		id         uuid PRIMARY KEY,
		state      varchar(32) NOT NULL,
		winner     varchar(256) NOT NULL DEFAULT '',
		snapshot   jsonb NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
}

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pool against dsn and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the tables if they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// SaveSnapshot upserts the latest committed snapshot for a game.
func (s *Store) SaveSnapshot(ctx context.Context, id uuid.UUID, g *engine.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO games (id, state, winner, snapshot, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET state = EXCLUDED.state,
		    winner = EXCLUDED.winner,
		    snapshot = EXCLUDED.snapshot,
		    updated_at = EXCLUDED.updated_at`,
		id, string(g.State), g.Winner, data, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert game %s: %w", id, err)
	}
	return nil
}

// LoadSnapshot reads a game's latest snapshot.
func (s *Store) LoadSnapshot(ctx context.Context, id uuid.UUID) (*engine.Game, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT snapshot FROM games WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("game %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	var g engine.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &g, nil
}

// CreateUser inserts a user with a pre-hashed password.
func (s *Store) CreateUser(ctx context.Context, id, hash string) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO users (id, hash) VALUES ($1, $2)`, id, hash)
	if err != nil {
		return fmt.Errorf("create user %s: %w", id, err)
	}
	return nil
}

// UserHash returns a user's stored password hash.
func (s *Store) UserHash(ctx context.Context, id string) (string, error) {
	var hash string
	err := s.pool.QueryRow(ctx, `SELECT hash FROM users WHERE id = $1`, id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("load user %s: %w", id, err)
	}
	return hash, nil
}
