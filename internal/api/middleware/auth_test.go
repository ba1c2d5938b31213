package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/playforge/tictactoe-backend/internal/api/models"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/auth"
	"github.com/playforge/tictactoe-backend/internal/mocks"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenManager, *mocks.MockPlayerRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	players := mocks.NewMockPlayerRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret-key", time.Hour)

	router := gin.New()
	router.GET("/protected", RequireAuth(tokens, players), func(c *gin.Context) {
		player := CurrentPlayer(c)
		require.NotNil(t, player)
		c.JSON(http.StatusOK, gin.H{"id": player.ID})
	})
	return router, tokens, players
}

func get(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	w := get(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthWrongScheme(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	w := get(router, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthGarbageToken(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	w := get(router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	expired := auth.NewTokenManager("test-secret-key", -time.Minute)
	token, err := expired.Issue(7, "alice")
	require.NoError(t, err)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthDeletedAccount(t *testing.T) {
	router, tokens, players := newAuthRouter(t)

	// A valid token whose account has since been deleted is refused
	token, err := tokens.Issue(7, "alice")
	require.NoError(t, err)
	players.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, repository.ErrPlayerNotFound)

	w := get(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthLoadsPlayer(t *testing.T) {
	router, tokens, players := newAuthRouter(t)

	token, err := tokens.Issue(7, "alice")
	require.NoError(t, err)
	players.EXPECT().GetByID(gomock.Any(), int64(7)).
		Return(&models.Player{ID: 7, Username: "alice"}, nil)

	w := get(router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 7}`, w.Body.String())
}
