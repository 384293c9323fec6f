package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"webtoonhub/internal/microservices/http-api/middleware"
	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer talks to
type Services struct {
	Auth          service.AuthService
	Ranking       service.RankingService
	Webtoons      service.WebtoonService
	Comments      service.CommentService
	Ads           service.AdvertisementService
	Subscriptions service.SubscriptionService
	Members       service.MemberService
}

type RouterOptions struct {
	Logger         *slog.Logger
	CORSOrigins    []string
	RequestTimeout time.Duration
	RateLimiter    *middleware.IPRateLimiter // nil disables rate limiting
	// HealthCheck reports backing store health for GET /health
	HealthCheck func(ctx context.Context) error
}

func NewRouter(svc Services, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", "Retry-After", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}
	if opts.RequestTimeout > 0 {
		router.Use(middleware.Timeout(opts.RequestTimeout))
	}

	router.GET("/health", func(c *gin.Context) {
		if opts.HealthCheck != nil {
			if err := opts.HealthCheck(c.Request.Context()); err != nil {
				logger.Warn("health_check_failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	requireAuth := middleware.AuthMiddleware(svc.Auth)
	requireAdmin := middleware.RequireAdmin()

	api := router.Group("/api")

	NewAuthHandler(svc.Auth).RegisterRoutes(api.Group("/auth"))
	NewRankingHandler(svc.Ranking).RegisterRoutes(api.Group("/ranking"))

	webtoons := api.Group("/webtoons")
	episodes := api.Group("/episodes")
	NewWebtoonHandler(svc.Webtoons).RegisterRoutes(webtoons, episodes, requireAuth)
	NewCommentHandler(svc.Comments).RegisterRoutes(episodes, api.Group("/comment"), requireAuth, requireAdmin)
	NewAdvertisementHandler(svc.Ads).RegisterRoutes(api.Group("/advertisement"), requireAuth, requireAdmin)
	NewSubscriptionHandler(svc.Subscriptions).RegisterRoutes(api.Group("/member/subscription", requireAuth))
	NewAdminHandler(svc.Members, svc.Webtoons, svc.Ads, svc.Comments).
		RegisterRoutes(api.Group("/admin", requireAuth, requireAdmin))

	return router
}
