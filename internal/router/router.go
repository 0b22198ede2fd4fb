package router

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recommendations/backend/internal/api"
	"github.com/pageza/recommendations/backend/internal/database"
	"github.com/pageza/recommendations/backend/internal/middleware"
	"github.com/pageza/recommendations/backend/internal/service"
)

// Options carries the dependencies of the route table.
type Options struct {
	Service service.IRecommendationService
	// DB is pinged by /health; nil skips the ping.
	DB *gorm.DB
	// Limiter guards write endpoints; nil disables rate limiting.
	Limiter     *middleware.RateLimiter
	CORSOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORS(opts.CORSOrigins),
		middleware.ErrorHandler(),
	)

	var ping api.PingFunc
	if opts.DB != nil {
		ping = func(ctx context.Context) error { return database.HealthCheck(ctx, opts.DB) }
	}

	router.GET("/", api.Index)
	router.GET("/health", api.NewHealthHandler(ping).HealthCheck)

	api.NewRecommendationHandlerWithRateLimit(opts.Service, opts.Limiter).RegisterRoutes(router)

	return router
}
