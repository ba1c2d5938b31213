package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playforge/tictactoe-backend/internal/api/middleware"
	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/response"
	"github.com/playforge/tictactoe-backend/internal/api/service"
	"github.com/playforge/tictactoe-backend/internal/game"
)

// GameController handles game HTTP requests.
type GameController struct {
	gameService service.GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// Create opens a new game with the authenticated player as X.
func (gc *GameController) Create(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := middleware.CurrentPlayer(c)
	if actor == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	g, err := gc.gameService.Create(c.Request.Context(), actor.ID, game.OpponentKind(req.Opponent))
	if err != nil {
		respondError(c, err)
		return
	}

	response.CreatedResponse(c, models.NewGameResponse(g))
}

// List returns a page of game summaries, newest first.
func (gc *GameController) List(c *gin.Context) {
	skip, limit, err := parseListParams(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	games, err := gc.gameService.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, games)
}

// Get returns the full state of one game.
func (gc *GameController) Get(c *gin.Context) {
	g, err := gc.gameService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(g))
}

// Join seats the authenticated player as O.
func (gc *GameController) Join(c *gin.Context) {
	actor := middleware.CurrentPlayer(c)
	if actor == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	g, err := gc.gameService.Join(c.Request.Context(), c.Param("id"), actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(g))
}

// Move places the authenticated player's mark, and returns the state after
// any computer reply.
func (gc *GameController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := middleware.CurrentPlayer(c)
	if actor == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	g, err := gc.gameService.Move(c.Request.Context(), c.Param("id"), actor.ID, *req.Row, *req.Col)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(g))
}

// Moves returns the move log of a game in play order.
func (gc *GameController) Moves(c *gin.Context) {
	moves, err := gc.gameService.Moves(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, moves)
}

// History returns every game a player took part in, newest first.
func (gc *GameController) History(c *gin.Context) {
	id, err := parsePlayerID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	games, err := gc.gameService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, games)
}

// Leaderboard returns players ranked by wins.
func (gc *GameController) Leaderboard(c *gin.Context) {
	entries, err := gc.gameService.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, entries)
}
