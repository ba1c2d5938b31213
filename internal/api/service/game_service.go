package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/game"
)

var (
	tracer = otel.Tracer("service.game")
	meter  = otel.Meter("service.game")
)

// GameService defines the interface for game-related business logic.
type GameService interface {
	Create(ctx context.Context, creatorID int64, kind game.OpponentKind) (game.Game, error)
	Get(ctx context.Context, id string) (game.Game, error)
	List(ctx context.Context, skip, limit int) ([]models.GameSummary, error)
	Join(ctx context.Context, gameID string, playerID int64) (game.Game, error)
	Move(ctx context.Context, gameID string, actorID int64, row, col int) (game.Game, error)
	Moves(ctx context.Context, gameID string) ([]models.MoveRecord, error)
	History(ctx context.Context, playerID int64) ([]models.GameSummary, error)
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}

type gameService struct {
	games        repository.GameRepository
	players      repository.PlayerRepository
	cache        repository.LeaderboardCache
	picker       game.MovePicker
	locks        stripedLocks
	movesApplied metric.Int64Counter
}

// NewGameService creates a new GameService. The picker decides the
// computer's replies.
func NewGameService(
	games repository.GameRepository,
	players repository.PlayerRepository,
	cache repository.LeaderboardCache,
	picker game.MovePicker,
) GameService {
	movesApplied, err := meter.Int64Counter("game.moves.applied",
		metric.WithDescription("Moves accepted, computer replies included"))
	if err != nil {
		otel.Handle(err)
	}
	return &gameService{
		games:        games,
		players:      players,
		cache:        cache,
		picker:       picker,
		movesApplied: movesApplied,
	}
}

// Create opens a new game with the creator in the X seat.
func (s *gameService) Create(ctx context.Context, creatorID int64, kind game.OpponentKind) (game.Game, error) {
	g := game.New(uuid.NewString(), creatorID, kind)
	if err := s.games.Create(ctx, g); err != nil {
		return game.Game{}, err
	}
	return g, nil
}

// Get loads a single game.
func (s *gameService) Get(ctx context.Context, id string) (game.Game, error) {
	return s.games.GetByID(ctx, id)
}

// List returns a page of game summaries, newest first.
func (s *gameService) List(ctx context.Context, skip, limit int) ([]models.GameSummary, error) {
	return s.games.List(ctx, skip, limit)
}

// Join seats the player as O. The game's stripe is held so a join cannot
// interleave with a move or a second join.
func (s *gameService) Join(ctx context.Context, gameID string, playerID int64) (game.Game, error) {
	lock := s.locks.forGame(gameID)
	lock.Lock()
	defer lock.Unlock()

	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, err
	}
	if err := g.Join(playerID); err != nil {
		return game.Game{}, err
	}
	if err := s.games.SaveWithMoves(ctx, g, nil); err != nil {
		return game.Game{}, err
	}
	return g, nil
}

// Move applies one turn, including any computer reply, and persists the
// result before reporting success. At most one move per game runs at a
// time.
func (s *gameService) Move(ctx context.Context, gameID string, actorID int64, row, col int) (game.Game, error) {
	ctx, span := tracer.Start(ctx, "GameService.Move")
	defer span.End()
	span.SetAttributes(
		attribute.String("game.id", gameID),
		attribute.Int64("player.id", actorID),
	)

	lock := s.locks.forGame(gameID)
	lock.Lock()
	defer lock.Unlock()

	g, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, err
	}

	moves, err := g.ApplyMove(actorID, row, col, s.picker)
	if err != nil {
		return game.Game{}, err
	}
	if err := s.games.SaveWithMoves(ctx, g, moves); err != nil {
		return game.Game{}, err
	}

	if s.movesApplied != nil {
		s.movesApplied.Add(ctx, int64(len(moves)))
	}
	if g.Complete {
		s.creditWinner(ctx, g)
	}
	return g, nil
}

// Moves returns the move log of a game in play order.
func (s *gameService) Moves(ctx context.Context, gameID string) ([]models.MoveRecord, error) {
	if _, err := s.games.GetByID(ctx, gameID); err != nil {
		return nil, err
	}
	return s.games.ListMoves(ctx, gameID)
}

// History returns every game the player took part in, newest first.
func (s *gameService) History(ctx context.Context, playerID int64) ([]models.GameSummary, error) {
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return nil, err
	}
	return s.games.ListByPlayer(ctx, playerID)
}

// Leaderboard serves from the cache when it is warm and falls back to SQL,
// rebuilding the cache on the way out.
func (s *gameService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if cached, err := s.cache.Snapshot(ctx); err != nil {
		slog.Warn("leaderboard cache read failed", "error", err)
	} else if cached != nil {
		entries, err := s.resolveCached(ctx, cached)
		if err == nil {
			return entries, nil
		}
		slog.Warn("failed to resolve cached leaderboard", "error", err)
	}

	entries, err := s.games.WinCounts(ctx)
	if err != nil {
		return nil, err
	}

	scores := make([]repository.CachedScore, 0, len(entries))
	for _, entry := range entries {
		scores = append(scores, repository.CachedScore{PlayerID: entry.PlayerID, Wins: entry.Wins})
	}
	if err := s.cache.Rebuild(ctx, scores); err != nil {
		slog.Warn("failed to rebuild leaderboard cache", "error", err)
	}
	return entries, nil
}

// creditWinner nudges the cached leaderboard after a win. Cache trouble
// never fails the move; SQL already holds the result.
func (s *gameService) creditWinner(ctx context.Context, g game.Game) {
	var winnerID int64
	switch g.Winner {
	case game.ResultX:
		winnerID = g.PlayerXID
	case game.ResultO:
		if !g.Opponent.Joined() {
			// the computer's wins are credited to nobody
			return
		}
		winnerID = g.Opponent.PlayerID
	default:
		return
	}
	if err := s.cache.IncrementWins(ctx, winnerID); err != nil {
		slog.Warn("failed to update leaderboard cache", "game_id", g.ID, "error", err)
	}
}

// resolveCached turns cached scores into leaderboard entries. Players
// deleted since the last rebuild are dropped until the TTL clears them.
func (s *gameService) resolveCached(ctx context.Context, scores []repository.CachedScore) ([]models.LeaderboardEntry, error) {
	ids := make([]int64, 0, len(scores))
	for _, score := range scores {
		ids = append(ids, score.PlayerID)
	}
	names, err := s.players.UsernamesByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		username, ok := names[score.PlayerID]
		if !ok {
			continue
		}
		entries = append(entries, models.LeaderboardEntry{
			PlayerID: score.PlayerID,
			Username: username,
			Wins:     score.Wins,
		})
	}
	return entries, nil
}
