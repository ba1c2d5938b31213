package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/api/response"
	"github.com/playforge/tictactoe-backend/internal/auth"
)

// PlayerKey is the gin context key under which RequireAuth stores the
// authenticated player.
const PlayerKey = "currentPlayer"

// RequireAuth validates the bearer token and loads the authenticated player
// into the request context. Tokens of deleted accounts are rejected.
func RequireAuth(tokens *auth.TokenManager, players repository.PlayerRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(c, "missing bearer token")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}
		playerID, err := claims.PlayerID()
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		player, err := players.GetByID(c.Request.Context(), playerID)
		if err != nil {
			if errors.Is(err, repository.ErrPlayerNotFound) {
				abortUnauthorized(c, "unknown player")
				return
			}
			slog.Error("failed to load authenticated player", "player_id", playerID, "error", err)
			response.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}

		c.Set(PlayerKey, player)
		c.Next()
	}
}

// CurrentPlayer returns the player loaded by RequireAuth, or nil on routes
// that skipped it.
func CurrentPlayer(c *gin.Context) *models.Player {
	value, exists := c.Get(PlayerKey)
	if !exists {
		return nil
	}
	player, ok := value.(*models.Player)
	if !ok {
		return nil
	}
	return player
}

func abortUnauthorized(c *gin.Context, message string) {
	response.ErrorResponse(c, http.StatusUnauthorized, message)
	c.Abort()
}
