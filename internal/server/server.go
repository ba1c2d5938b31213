package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/playforge/tictactoe-backend/internal/api/controller"
)

// Server owns the HTTP listener and the route table.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New builds the router and wires every endpoint. Write endpoints sit
// behind requireAuth; reads are public.
func New(port string, players *controller.PlayerController, games *controller.GameController, requireAuth gin.HandlerFunc) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", players.Register)
			authRoutes.POST("/login", players.Login)
			authRoutes.GET("/me", requireAuth, players.Me)
		}

		playerRoutes := api.Group("/players")
		{
			playerRoutes.GET("", players.List)
			playerRoutes.GET("/:id", players.Get)
			playerRoutes.PUT("/:id", requireAuth, players.Update)
			playerRoutes.DELETE("/:id", requireAuth, players.Delete)
			playerRoutes.GET("/:id/history", games.History)
		}

		gameRoutes := api.Group("/games")
		{
			gameRoutes.POST("", requireAuth, games.Create)
			gameRoutes.GET("", games.List)
			gameRoutes.GET("/:id", games.Get)
			gameRoutes.POST("/:id/join", requireAuth, games.Join)
			gameRoutes.POST("/:id/move", requireAuth, games.Move)
			gameRoutes.GET("/:id/moves", games.Moves)
		}

		api.GET("/leaderboard", games.Leaderboard)
	}

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              ":" + port,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("http server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// requestLogger logs one line per request after it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
