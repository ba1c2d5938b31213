package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/api/service"
	"github.com/playforge/tictactoe-backend/internal/mocks"
)

func newPlayerRouter(t *testing.T) (*gin.Engine, *mocks.MockPlayerService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPlayerService(ctrl)
	pc := NewPlayerController(svc)
	actor := asPlayer(&models.Player{ID: 1, Username: "alice"})

	router := gin.New()
	router.POST("/api/auth/register", pc.Register)
	router.POST("/api/auth/login", pc.Login)
	router.GET("/api/auth/me", actor, pc.Me)
	router.GET("/api/players", pc.List)
	router.GET("/api/players/:id", pc.Get)
	router.PUT("/api/players/:id", actor, pc.Update)
	router.DELETE("/api/players/:id", actor, pc.Delete)
	return router, svc
}

func TestPlayerControllerRegister(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().
		Register(gomock.Any(), &models.RegisterRequest{Username: "alice", Password: "password123"}).
		Return(&models.Player{ID: 1, Username: "alice"}, nil)

	w := performRequest(router, http.MethodPost, "/api/auth/register",
		gin.H{"username": "alice", "password": "password123"})

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Contains(t, string(env.Extras), `"username":"alice"`)
	assert.NotContains(t, string(env.Extras), "password")
}

func TestPlayerControllerRegisterDuplicate(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, repository.ErrUsernameTaken)

	w := performRequest(router, http.MethodPost, "/api/auth/register",
		gin.H{"username": "alice", "password": "password123"})

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
}

func TestPlayerControllerRegisterValidation(t *testing.T) {
	router, _ := newPlayerRouter(t)

	// Username below the minimum length never reaches the service
	w := performRequest(router, http.MethodPost, "/api/auth/register",
		gin.H{"username": "al", "password": "password123"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayerControllerLogin(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().
		Login(gomock.Any(), &models.LoginRequest{Username: "alice", Password: "password123"}).
		Return("token-abc", nil)

	w := performRequest(router, http.MethodPost, "/api/auth/login",
		gin.H{"username": "alice", "password": "password123"})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.JSONEq(t, `{"token": "token-abc"}`, string(env.Extras))
}

func TestPlayerControllerLoginRejected(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", service.ErrInvalidCredentials)

	w := performRequest(router, http.MethodPost, "/api/auth/login",
		gin.H{"username": "alice", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlayerControllerMe(t *testing.T) {
	router, _ := newPlayerRouter(t)

	w := performRequest(router, http.MethodGet, "/api/auth/me", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, string(env.Extras), `"username":"alice"`)
}

func TestPlayerControllerGetInvalidID(t *testing.T) {
	router, _ := newPlayerRouter(t)

	w := performRequest(router, http.MethodGet, "/api/players/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayerControllerGetNotFound(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, repository.ErrPlayerNotFound)

	w := performRequest(router, http.MethodGet, "/api/players/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlayerControllerUpdatePassword(t *testing.T) {
	router, svc := newPlayerRouter(t)

	// A password-only body binds with the username left absent
	svc.EXPECT().
		Update(gomock.Any(), int64(1), int64(1), &models.UpdatePlayerRequest{Password: strPtr("n3wsecret")}).
		Return(&models.Player{ID: 1, Username: "alice"}, nil)

	w := performRequest(router, http.MethodPut, "/api/players/1", gin.H{"password": "n3wsecret"})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, string(env.Extras), `"username":"alice"`)
	assert.NotContains(t, string(env.Extras), "n3wsecret")
}

func TestPlayerControllerUpdateValidation(t *testing.T) {
	router, _ := newPlayerRouter(t)

	// A present-but-short password never reaches the service
	w := performRequest(router, http.MethodPut, "/api/players/1", gin.H{"password": "pw"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlayerControllerUpdateForbidden(t *testing.T) {
	router, svc := newPlayerRouter(t)

	// The router authenticates as player 1, who tries to rename player 2
	svc.EXPECT().
		Update(gomock.Any(), int64(1), int64(2), &models.UpdatePlayerRequest{Username: strPtr("newname")}).
		Return(nil, service.ErrForbidden)

	w := performRequest(router, http.MethodPut, "/api/players/2", gin.H{"username": "newname"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPlayerControllerDelete(t *testing.T) {
	router, svc := newPlayerRouter(t)

	svc.EXPECT().Delete(gomock.Any(), int64(1), int64(1)).Return(nil)

	w := performRequest(router, http.MethodDelete, "/api/players/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
