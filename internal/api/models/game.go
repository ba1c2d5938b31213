package models

import (
	"time"

	"github.com/playforge/tictactoe-backend/internal/game"
)

// Opponent display names used in summaries when no human holds the O seat.
const (
	DisplayComputer = "Computer"
	DisplayPending  = "Pending"
)

// CreateGameRequest starts a new game against a human or the computer.
type CreateGameRequest struct {
	Opponent string `json:"opponent" binding:"required,oneof=human computer"`
}

// MoveRequest places a mark. Pointer fields keep zero coordinates
// distinguishable from missing ones.
type MoveRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// GameResponse is the full wire state of one game. The board is a 3x3 grid
// of "", "X", "O".
type GameResponse struct {
	ID        string          `json:"id"`
	PlayerXID int64           `json:"player_x_id"`
	PlayerOID *int64          `json:"player_o_id"`
	Opponent  string          `json:"opponent"`
	Board     game.Board      `json:"board"`
	Turn      game.PlayerMark `json:"turn"`
	Winner    game.GameResult `json:"winner"`
	Complete  bool            `json:"complete"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewGameResponse converts a domain game into its wire shape.
func NewGameResponse(g game.Game) GameResponse {
	resp := GameResponse{
		ID:        g.ID,
		PlayerXID: g.PlayerXID,
		Opponent:  string(g.Opponent.Kind),
		Board:     g.Board,
		Turn:      g.Turn,
		Winner:    g.Winner,
		Complete:  g.Complete,
		CreatedAt: g.CreatedAt,
	}
	if g.Opponent.Joined() {
		oid := g.Opponent.PlayerID
		resp.PlayerOID = &oid
	}
	return resp
}

// GameSummary is one listing or history item with display names resolved.
type GameSummary struct {
	ID        string    `json:"id"`
	PlayerX   string    `json:"player_x"`
	PlayerO   string    `json:"player_o"`
	Winner    string    `json:"winner"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"created_at"`
}

// MoveRecord is one stored move-log entry. PlayerID is nil for moves made
// by the computer.
type MoveRecord struct {
	GameID     string          `db:"game_id" json:"game_id"`
	PlayerID   *int64          `db:"player_id" json:"player_id"`
	Row        int             `db:"cell_row" json:"row"`
	Col        int             `db:"cell_col" json:"col"`
	Symbol     game.PlayerMark `db:"symbol" json:"symbol"`
	MoveNumber int             `db:"move_number" json:"move_number"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// LeaderboardEntry is one row of the win-count leaderboard.
type LeaderboardEntry struct {
	PlayerID int64  `db:"id" json:"player_id"`
	Username string `db:"username" json:"username"`
	Wins     int64  `db:"wins" json:"wins"`
}
