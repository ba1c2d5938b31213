package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/db"
	"github.com/playforge/tictactoe-backend/internal/game"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := db.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	require.NoError(t, db.InitSchema(pool))
	return pool
}

// seedPlayer registers a player and returns it with its generated ID.
func seedPlayer(t *testing.T, players PlayerRepository, username string) *models.Player {
	t.Helper()
	player := &models.Player{Username: username}
	require.NoError(t, players.Create(context.Background(), player, "password123"))
	return player
}

// seedGame opens a game for the creator and persists it.
func seedGame(t *testing.T, games GameRepository, creatorID int64, kind game.OpponentKind) game.Game {
	t.Helper()
	g := game.New(uuid.NewString(), creatorID, kind)
	require.NoError(t, games.Create(context.Background(), g))
	return g
}

// firstFreePicker takes the first open cell in reading order, which keeps
// computer replies deterministic in tests.
type firstFreePicker struct{}

func (firstFreePicker) PickMove(b game.Board) (int, int, error) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return -1, -1, fmt.Errorf("board is full")
	}
	return cells[0][0], cells[0][1], nil
}
