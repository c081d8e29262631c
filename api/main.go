package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rogerio-castellano/catalog-tracker/internal/config"
	"github.com/rogerio-castellano/catalog-tracker/internal/db"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/ban"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/catalog-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/catalog-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/catalog-tracker/internal/http/router"
	"github.com/rogerio-castellano/catalog-tracker/internal/obs"
	"github.com/rogerio-castellano/catalog-tracker/internal/redissvc"
	"github.com/rogerio-castellano/catalog-tracker/internal/repo"
)

const visitorMaxIdle = 3 * time.Minute

// @title Catalog Tracker API
// @version 1.0
// @description REST API for the product catalog and its statistics.
// @host localhost:8080
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		obs.InitLogger("info")
		obs.Logger.Error("config_invalid", "error", err)
		os.Exit(1)
	}
	obs.InitLogger(cfg.LogLevel)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	database, err := setupRepositories(ctx, cfg)
	if err != nil {
		obs.Logger.Error("db_setup_failed", "error", err, "driver", cfg.DBDriver)
		os.Exit(1)
	}
	if database != nil {
		defer database.Close()
	}
	handlers.SetRecentLimit(cfg.RecentProducts)

	var store ban.Store = ban.NewMemoryStore()
	if cfg.RedisAddr != "" {
		redisService := redissvc.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisService.Ping(ctx); err != nil {
			obs.Logger.Error("redis_unreachable", "error", err, "addr", cfg.RedisAddr)
			os.Exit(1)
		}
		defer redisService.Close()
		store = ban.NewRedisStore(redisService.Rdb())
	}

	limiter := rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	guard := ban.NewGuard(store, cfg.BanMaxStrikes, cfg.BanStrikeTTL, cfg.BanTTL)
	mw.SetRateLimiter(limiter)
	mw.SetBanGuard(guard)
	go limiter.StartVisitorCleanupLoop(ctx, visitorMaxIdle)
	go guard.StartSummaryLoop(ctx, cfg.BanSummaryEach)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		obs.Logger.Info("server_listening", "addr", cfg.HTTPAddr, "db_driver", cfg.DBDriver, "redis", cfg.RedisAddr != "")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			obs.Logger.Error("server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())
	stop()

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	if _, err := guard.FlushSummary(ctxSrv); err != nil {
		obs.Logger.Warn("ban_summary_flush_failed", "error", err)
	}
	obs.Logger.Info("shutdown_complete")
}

// setupRepositories installs the handler repositories for the configured
// driver. The returned database is nil for the memory driver.
func setupRepositories(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DBDriver == db.DriverMemory {
		handlers.SetProductRepo(repo.NewInMemoryProductRepository())
		handlers.SetCategoryRepo(repo.NewInMemoryCategoryRepository())
		return nil, nil
	}

	database, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(ctx, database, cfg.DBDriver); err != nil {
		database.Close()
		return nil, err
	}
	handlers.SetProductRepo(repo.NewSQLProductRepository(database))
	handlers.SetCategoryRepo(repo.NewSQLCategoryRepository(database))
	return database, nil
}
