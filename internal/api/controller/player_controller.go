package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/playforge/tictactoe-backend/internal/api/middleware"
	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/response"
	"github.com/playforge/tictactoe-backend/internal/api/service"
)

// PlayerController handles account and profile HTTP requests.
type PlayerController struct {
	playerService service.PlayerService
}

// NewPlayerController creates a new PlayerController.
func NewPlayerController(playerService service.PlayerService) *PlayerController {
	return &PlayerController{
		playerService: playerService,
	}
}

// Register handles the registration endpoint.
func (pc *PlayerController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := pc.playerService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.CreatedResponse(c, player)
}

// Login handles the login endpoint.
func (pc *PlayerController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := pc.playerService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, models.LoginResponse{Token: token})
}

// Me returns the authenticated player's own profile.
func (pc *PlayerController) Me(c *gin.Context) {
	player := middleware.CurrentPlayer(c)
	if player == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	response.SuccessResponse(c, player)
}

// List returns a page of players.
func (pc *PlayerController) List(c *gin.Context) {
	skip, limit, err := parseListParams(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	players, err := pc.playerService.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, players)
}

// Get returns a single player by ID.
func (pc *PlayerController) Get(c *gin.Context) {
	id, err := parsePlayerID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	player, err := pc.playerService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, player)
}

// Update changes a player's username or password. Only the account owner may
// do this.
func (pc *PlayerController) Update(c *gin.Context) {
	id, err := parsePlayerID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req models.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := middleware.CurrentPlayer(c)
	if actor == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	player, err := pc.playerService.Update(c.Request.Context(), actor.ID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.SuccessResponse(c, player)
}

// Delete removes a player account. Only the account owner may do this.
func (pc *PlayerController) Delete(c *gin.Context) {
	id, err := parsePlayerID(c)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := middleware.CurrentPlayer(c)
	if actor == nil {
		response.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := pc.playerService.Delete(c.Request.Context(), actor.ID, id); err != nil {
		respondError(c, err)
		return
	}

	response.NoContentResponse(c)
}
