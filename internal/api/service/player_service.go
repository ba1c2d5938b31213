package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/auth"
)

// PlayerService defines the interface for player account business logic.
type PlayerService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Player, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	GetByID(ctx context.Context, id int64) (*models.Player, error)
	List(ctx context.Context, skip, limit int) ([]models.Player, error)
	Update(ctx context.Context, actorID, id int64, req *models.UpdatePlayerRequest) (*models.Player, error)
	Delete(ctx context.Context, actorID, id int64) error
}

type playerService struct {
	players repository.PlayerRepository
	tokens  *auth.TokenManager
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(players repository.PlayerRepository, tokens *auth.TokenManager) PlayerService {
	return &playerService{players: players, tokens: tokens}
}

// Register handles account creation.
func (s *playerService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Player, error) {
	existing, err := s.players.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, repository.ErrUsernameTaken
	}

	player := &models.Player{
		Username: req.Username,
	}
	if err := s.players.Create(ctx, player, req.Password); err != nil {
		return nil, err
	}
	return player, nil
}

// Login checks the credentials and returns a signed token on success. A
// missing account and a wrong password are indistinguishable to the caller.
func (s *playerService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	player, err := s.players.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if player == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(player.ID, player.Username)
}

// GetByID returns a single player.
func (s *playerService) GetByID(ctx context.Context, id int64) (*models.Player, error) {
	return s.players.GetByID(ctx, id)
}

// List returns a page of players.
func (s *playerService) List(ctx context.Context, skip, limit int) ([]models.Player, error) {
	return s.players.List(ctx, skip, limit)
}

// Update changes an account's username, password, or both. Players may only
// update themselves. The username goes first so a taken name rejects the
// request before the password is touched.
func (s *playerService) Update(ctx context.Context, actorID, id int64, req *models.UpdatePlayerRequest) (*models.Player, error) {
	if actorID != id {
		return nil, ErrForbidden
	}
	if req.Username != nil {
		if err := s.players.UpdateUsername(ctx, id, *req.Username); err != nil {
			return nil, err
		}
	}
	if req.Password != nil {
		if err := s.players.UpdatePassword(ctx, id, *req.Password); err != nil {
			return nil, err
		}
	}
	return s.players.GetByID(ctx, id)
}

// Delete removes an account. Players may only delete themselves.
func (s *playerService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID != id {
		return ErrForbidden
	}
	return s.players.Delete(ctx, id)
}
