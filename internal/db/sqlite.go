package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the SQLite database at path and enables foreign keys.
// The pool is pinned to a single connection: SQLite allows one writer at a
// time, and the foreign_keys pragma only applies to the connection that
// ran it.
func Connect(path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	pool.SetMaxOpenConns(1)
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return pool, nil
}

// InitSchema creates the tables when they do not exist yet.
func InitSchema(pool *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS players (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		player_x_id INTEGER NOT NULL REFERENCES players(id) ON DELETE CASCADE,
		player_o_id INTEGER REFERENCES players(id) ON DELETE SET NULL,
		opponent_type TEXT NOT NULL,
		board TEXT NOT NULL,
		turn TEXT NOT NULL,
		winner TEXT NOT NULL DEFAULT '',
		complete INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		player_id INTEGER REFERENCES players(id) ON DELETE SET NULL,
		cell_row INTEGER NOT NULL,
		cell_col INTEGER NOT NULL,
		symbol TEXT NOT NULL,
		move_number INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (game_id, move_number)
	);

	CREATE INDEX IF NOT EXISTS idx_games_player_x ON games(player_x_id);
	CREATE INDEX IF NOT EXISTS idx_games_player_o ON games(player_o_id);
	CREATE INDEX IF NOT EXISTS idx_moves_game ON moves(game_id);
	`

	if _, err := pool.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
