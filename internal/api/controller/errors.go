package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/api/response"
	"github.com/playforge/tictactoe-backend/internal/api/service"
	"github.com/playforge/tictactoe-backend/internal/game"
)

const maxListLimit = 100

// respondError translates domain and storage errors into HTTP statuses.
// Anything unrecognized is a 500 with the detail kept out of the response.
func respondError(c *gin.Context, err error) {
	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
	}
	response.ErrorResponse(c, status, message)
}

func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, repository.ErrUsernameTaken),
		errors.Is(err, game.ErrSeatTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, game.ErrNotParticipant):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, game.ErrGameFinished),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrCellOccupied),
		errors.Is(err, game.ErrJoinComputerGame),
		errors.Is(err, game.ErrJoinOwnGame):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// parseListParams reads skip/limit query parameters, defaulting to the
// first twenty rows and capping the page size.
func parseListParams(c *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return 0, 0, errors.New("skip must be a non-negative integer")
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		return 0, 0, errors.New("limit must be a non-negative integer")
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return skip, limit, nil
}

// parsePlayerID reads a numeric :id path parameter.
func parsePlayerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errors.New("player id must be an integer")
	}
	return id, nil
}
