package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/playforge/tictactoe-backend/internal/api/models"
)

// PlayerRepository defines the interface for player account persistence.
type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player, password string) error
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	List(ctx context.Context, skip, limit int) ([]models.Player, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	Delete(ctx context.Context, id int64) error
	UsernamesByID(ctx context.Context, ids []int64) (map[int64]string, error)
}

type sqlitePlayerRepository struct {
	db *sqlx.DB
}

// NewPlayerRepository creates a new SQLite-based PlayerRepository.
func NewPlayerRepository(db *sqlx.DB) PlayerRepository {
	return &sqlitePlayerRepository{db: db}
}

// Create hashes the password and inserts the player, filling in the
// generated ID and creation time.
func (r *sqlitePlayerRepository) Create(ctx context.Context, player *models.Player, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	player.PasswordHash = string(hashedPassword)
	player.CreatedAt = time.Now().UTC()

	query := `INSERT INTO players (username, password_hash, created_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, player.Username, player.PasswordHash, player.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	player.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new player id: %w", err)
	}
	return nil
}

// GetByUsername retrieves a player by username. Absence is not an
// application error here; both return values are nil.
func (r *sqlitePlayerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	var player models.Player
	query := `SELECT id, username, password_hash, created_at FROM players WHERE username = ?`
	if err := r.db.GetContext(ctx, &player, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player by username: %w", err)
	}
	return &player, nil
}

// GetByID retrieves a player by ID.
func (r *sqlitePlayerRepository) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	var player models.Player
	query := `SELECT id, username, password_hash, created_at FROM players WHERE id = ?`
	if err := r.db.GetContext(ctx, &player, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	return &player, nil
}

// List returns players ordered by ID, skipping the first skip rows and
// returning at most limit rows.
func (r *sqlitePlayerRepository) List(ctx context.Context, skip, limit int) ([]models.Player, error) {
	players := []models.Player{}
	query := `SELECT id, username, password_hash, created_at FROM players ORDER BY id LIMIT ? OFFSET ?`
	if err := r.db.SelectContext(ctx, &players, query, limit, skip); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// UpdateUsername renames a player.
func (r *sqlitePlayerRepository) UpdateUsername(ctx context.Context, id int64, username string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE players SET username = ? WHERE id = ?`, username, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to update player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// UpdatePassword hashes and stores a new password, replacing the old hash.
func (r *sqlitePlayerRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE players SET password_hash = ? WHERE id = ?`, string(hashedPassword), id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Delete removes a player. Games created by the player cascade away with
// their moves; games the player merely joined keep running with the O seat
// cleared.
func (r *sqlitePlayerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// UsernamesByID resolves display names for a set of player IDs. IDs that no
// longer exist are simply absent from the result.
func (r *sqlitePlayerRepository) UsernamesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}
	query, args, err := sqlx.In(`SELECT id, username FROM players WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build username query: %w", err)
	}
	rows := []struct {
		ID       int64  `db:"id"`
		Username string `db:"username"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to resolve usernames: %w", err)
	}
	names := make(map[int64]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Username
	}
	return names, nil
}

// isUniqueViolation reports whether err came from a UNIQUE constraint. The
// pure-Go sqlite driver exposes no typed constraint error, so the message
// is the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
