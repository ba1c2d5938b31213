package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/game"
)

var tracer = otel.Tracer("repository.game")

// GameRepository defines the interface for game and move-log persistence.
type GameRepository interface {
	Create(ctx context.Context, g game.Game) error
	GetByID(ctx context.Context, id string) (game.Game, error)
	SaveWithMoves(ctx context.Context, g game.Game, moves []game.Move) error
	List(ctx context.Context, skip, limit int) ([]models.GameSummary, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]models.GameSummary, error)
	ListMoves(ctx context.Context, gameID string) ([]models.MoveRecord, error)
	WinCounts(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type sqliteGameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a new SQLite-based GameRepository.
func NewGameRepository(db *sqlx.DB) GameRepository {
	return &sqliteGameRepository{db: db}
}

// gameRow mirrors the games table. Translating here keeps SQL NULLs and the
// JSON board encoding out of the domain type.
type gameRow struct {
	ID           string        `db:"id"`
	PlayerXID    int64         `db:"player_x_id"`
	PlayerOID    sql.NullInt64 `db:"player_o_id"`
	OpponentType string        `db:"opponent_type"`
	Board        string        `db:"board"`
	Turn         string        `db:"turn"`
	Winner       string        `db:"winner"`
	Complete     bool          `db:"complete"`
	CreatedAt    time.Time     `db:"created_at"`
}

func toRow(g game.Game) (gameRow, error) {
	boardJSON, err := json.Marshal(g.Board)
	if err != nil {
		return gameRow{}, fmt.Errorf("failed to marshal board: %w", err)
	}
	row := gameRow{
		ID:           g.ID,
		PlayerXID:    g.PlayerXID,
		OpponentType: string(g.Opponent.Kind),
		Board:        string(boardJSON),
		Turn:         string(g.Turn),
		Winner:       string(g.Winner),
		Complete:     g.Complete,
		CreatedAt:    g.CreatedAt,
	}
	if g.Opponent.Joined() {
		row.PlayerOID = sql.NullInt64{Int64: g.Opponent.PlayerID, Valid: true}
	}
	return row, nil
}

func (row gameRow) toGame() (game.Game, error) {
	var board game.Board
	if err := json.Unmarshal([]byte(row.Board), &board); err != nil {
		return game.Game{}, fmt.Errorf("failed to unmarshal board: %w", err)
	}
	g := game.Game{
		ID:        row.ID,
		PlayerXID: row.PlayerXID,
		Opponent:  game.Opponent{Kind: game.OpponentKind(row.OpponentType)},
		Board:     board,
		Turn:      game.PlayerMark(row.Turn),
		Winner:    game.GameResult(row.Winner),
		Complete:  row.Complete,
		CreatedAt: row.CreatedAt,
	}
	if row.PlayerOID.Valid {
		g.Opponent.PlayerID = row.PlayerOID.Int64
	}
	return g, nil
}

// Create inserts a freshly opened game.
func (r *sqliteGameRepository) Create(ctx context.Context, g game.Game) error {
	ctx, span := tracer.Start(ctx, "GameRepository.Create")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", g.ID))

	row, err := toRow(g)
	if err != nil {
		return err
	}

	query := `INSERT INTO games (id, player_x_id, player_o_id, opponent_type, board, turn, winner, complete, created_at)
		VALUES (:id, :player_x_id, :player_o_id, :opponent_type, :board, :turn, :winner, :complete, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert game")
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// GetByID loads a single game.
func (r *sqliteGameRepository) GetByID(ctx context.Context, id string) (game.Game, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.GetByID")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", id))

	var row gameRow
	query := `SELECT id, player_x_id, player_o_id, opponent_type, board, turn, winner, complete, created_at
		FROM games WHERE id = ?`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return game.Game{}, ErrGameNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "select game")
		return game.Game{}, fmt.Errorf("failed to get game: %w", err)
	}
	return row.toGame()
}

// SaveWithMoves writes the updated game state and appends the given moves in
// a single transaction, so a half-applied turn never becomes visible.
func (r *sqliteGameRepository) SaveWithMoves(ctx context.Context, g game.Game, moves []game.Move) error {
	ctx, span := tracer.Start(ctx, "GameRepository.SaveWithMoves")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", g.ID),
		attribute.Int("game.moves", len(moves)),
	)

	row, err := toRow(g)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updateQuery := `UPDATE games SET player_o_id = :player_o_id, board = :board, turn = :turn,
		winner = :winner, complete = :complete WHERE id = :id`
	res, err := tx.NamedExecContext(ctx, updateQuery, row)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update game")
		return fmt.Errorf("failed to save game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrGameNotFound
	}

	insertQuery := `INSERT INTO moves (game_id, player_id, cell_row, cell_col, symbol, move_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	for _, move := range moves {
		playerID := sql.NullInt64{}
		if move.PlayerID != game.ComputerActor {
			playerID = sql.NullInt64{Int64: move.PlayerID, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, insertQuery,
			move.GameID, playerID, move.Row, move.Col, string(move.Symbol), move.Number, now); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "append move")
			return fmt.Errorf("failed to append move: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit move transaction: %w", err)
	}
	return nil
}

// summaryRow carries the joined listing columns before NULL seats are
// turned into display names.
type summaryRow struct {
	ID           string         `db:"id"`
	PlayerX      string         `db:"player_x"`
	PlayerO      sql.NullString `db:"player_o"`
	OpponentType string         `db:"opponent_type"`
	Winner       string         `db:"winner"`
	Complete     bool           `db:"complete"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (row summaryRow) toSummary() models.GameSummary {
	summary := models.GameSummary{
		ID:        row.ID,
		PlayerX:   row.PlayerX,
		Winner:    row.Winner,
		Complete:  row.Complete,
		CreatedAt: row.CreatedAt,
	}
	switch {
	case row.PlayerO.Valid:
		summary.PlayerO = row.PlayerO.String
	case row.OpponentType == string(game.OpponentComputer):
		summary.PlayerO = models.DisplayComputer
	default:
		summary.PlayerO = models.DisplayPending
	}
	return summary
}

const summarySelect = `SELECT g.id, px.username AS player_x, po.username AS player_o,
		g.opponent_type, g.winner, g.complete, g.created_at
	FROM games g
	JOIN players px ON px.id = g.player_x_id
	LEFT JOIN players po ON po.id = g.player_o_id`

// List returns game summaries, newest first.
func (r *sqliteGameRepository) List(ctx context.Context, skip, limit int) ([]models.GameSummary, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.List")
	defer span.End()

	rows := []summaryRow{}
	query := summarySelect + ` ORDER BY g.created_at DESC, g.id LIMIT ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &rows, query, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summaries := make([]models.GameSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}

// ListByPlayer returns every game the player took part in, newest first.
func (r *sqliteGameRepository) ListByPlayer(ctx context.Context, playerID int64) ([]models.GameSummary, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.ListByPlayer")
	defer span.End()
	span.SetAttributes(attribute.Int64("player.id", playerID))

	rows := []summaryRow{}
	query := summarySelect + ` WHERE g.player_x_id = ? OR g.player_o_id = ? ORDER BY g.created_at DESC, g.id`
	if err := r.db.SelectContext(ctx, &rows, query, playerID, playerID); err != nil {
		return nil, fmt.Errorf("failed to list games for player: %w", err)
	}

	summaries := make([]models.GameSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}

// ListMoves returns a game's move log in play order.
func (r *sqliteGameRepository) ListMoves(ctx context.Context, gameID string) ([]models.MoveRecord, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.ListMoves")
	defer span.End()
	span.SetAttributes(attribute.String("game.id", gameID))

	moves := []models.MoveRecord{}
	query := `SELECT game_id, player_id, cell_row, cell_col, symbol, move_number, created_at
		FROM moves WHERE game_id = ? ORDER BY move_number`
	if err := r.db.SelectContext(ctx, &moves, query, gameID); err != nil {
		return nil, fmt.Errorf("failed to list moves: %w", err)
	}
	return moves, nil
}

// WinCounts tallies finished games per player, most wins first. Players
// with no wins are included; computer wins are credited to nobody.
func (r *sqliteGameRepository) WinCounts(ctx context.Context) ([]models.LeaderboardEntry, error) {
	ctx, span := tracer.Start(ctx, "GameRepository.WinCounts")
	defer span.End()

	entries := []models.LeaderboardEntry{}
	query := `SELECT p.id, p.username,
			(SELECT COUNT(*) FROM games gx WHERE gx.player_x_id = p.id AND gx.winner = 'X')
			+ (SELECT COUNT(*) FROM games og WHERE og.player_o_id = p.id AND og.winner = 'O') AS wins
		FROM players p
		ORDER BY wins DESC, p.id`
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to tally wins: %w", err)
	}
	return entries, nil
}
