package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webtoonhub/database"
	"webtoonhub/internal/config"
	"webtoonhub/internal/logging"
	"webtoonhub/internal/microservices/http-api/handler"
	"webtoonhub/internal/microservices/http-api/middleware"
	"webtoonhub/internal/microservices/http-api/repository"
	"webtoonhub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger := logging.New(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// ranking still works without redis, just uncached
	rdb, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		logger.Warn("redis_unavailable_cache_disabled", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	memberRepo := repository.NewMemberRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	webtoonRepo := repository.NewWebtoonRepository(db)
	episodeRepo := repository.NewEpisodeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	adRepo := repository.NewAdvertisementRepository(db)
	rankingRepo := repository.NewRankingRepository(db)
	rankingCache := repository.NewRankingCache(rdb, time.Duration(cfg.CacheTTL)*time.Second)

	services := handler.Services{
		Auth:          service.NewAuthService(memberRepo, cfg),
		Ranking:       service.NewRankingService(rankingRepo, rankingCache),
		Webtoons:      service.NewWebtoonService(webtoonRepo, episodeRepo, artistRepo, rankingCache, cfg.DefaultAdminID),
		Comments:      service.NewCommentService(commentRepo, episodeRepo, cfg.DefaultAdminID),
		Ads:           service.NewAdvertisementService(adRepo, cfg.DefaultAdminID),
		Subscriptions: service.NewSubscriptionService(subscriptionRepo, webtoonRepo),
		Members:       service.NewMemberService(memberRepo, artistRepo, cfg.DefaultAdminID),
	}

	limiter := middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := handler.NewRouter(services, handler.RouterOptions{
		Logger:         logger,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		RateLimiter:    limiter,
		HealthCheck:    healthCheck(db, rdb),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepLimiter(ctx, limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTPHost, cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
		return
	}
	logger.Info("server_stopped_gracefully")
}

func healthCheck(db *gorm.DB, rdb *redis.Client) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		if rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return fmt.Errorf("redis: %w", err)
			}
		}
		return nil
	}
}

func sweepLimiter(ctx context.Context, limiter *middleware.IPRateLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep()
		}
	}
}
