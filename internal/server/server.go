package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/recommendations/backend/config"
	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/middleware"
	"github.com/pageza/recommendations/backend/internal/router"
	"github.com/pageza/recommendations/backend/internal/service"
)

// ShutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const ShutdownTimeout = 5 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires the recommendation service, the optional Redis rate limiter and
// the route table into an HTTP server listening on cfg.Addr().
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	if cfg.Env == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	limiter := middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitPerMinute)
	if limiter == nil {
		logging.Info().Msg("Rate limiting disabled")
	}

	r := router.SetupRouter(router.Options{
		Service:     service.NewRecommendationService(db),
		DB:          db,
		Limiter:     limiter,
		CORSOrigins: cfg.CORSOrigins,
	})

	return &Server{
		router: r,
		db:     db,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	logging.Info().Str("addr", s.http.Addr).Msg("Starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting at most ShutdownTimeout
// for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
