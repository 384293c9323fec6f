package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webtoonhub/database"
	"webtoonhub/internal/config"
	"webtoonhub/internal/jobs/viewstat"
	"webtoonhub/internal/logging"
	"webtoonhub/internal/microservices/http-api/repository"
)

func main() {
	interval := flag.Duration("interval", 0, "repeat the rollup on this interval; 0 runs once and exits")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	logger := logging.New(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	rdb, err := database.ConnectRedis(cfg, logger)
	if err != nil {
		logger.Warn("redis_unavailable_skip_invalidation", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	rollup := viewstat.NewRollup(
		repository.NewViewStatRepository(db),
		repository.NewRankingCache(rdb, time.Duration(cfg.CacheTTL)*time.Second),
		cfg.RollupWorkers,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *interval > 0 {
		logger.Info("viewstat_rollup_loop", "interval", *interval)
		rollup.Loop(ctx, *interval)
		return
	}

	if _, err := rollup.Run(ctx); err != nil {
		logger.Error("viewstat_rollup_failed", "error", err)
		stop()
		database.Close(db)
		os.Exit(1)
	}
}
