package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/farm-market/internal/api"
	"github.com/baharkarakas/farm-market/internal/auth"
	"github.com/baharkarakas/farm-market/internal/config"
	"github.com/baharkarakas/farm-market/internal/db"
	"github.com/baharkarakas/farm-market/internal/logger"
	"github.com/baharkarakas/farm-market/internal/metrics"
	"github.com/baharkarakas/farm-market/internal/middleware"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	mongorepo "github.com/baharkarakas/farm-market/internal/repository/mongo"
	"github.com/baharkarakas/farm-market/internal/repository/postgres"
	"github.com/baharkarakas/farm-market/internal/services"
)

// store is the opened document backend.
type store struct {
	repos repo.Repositories
	ping  func(ctx context.Context) error
	close func()
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store connect", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer st.close()

	limiter, closeLimiter := rateLimiter(cfg)
	defer closeLimiter()

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Cfg:      cfg,
		Users:    services.NewUserService(st.repos.Users, tm),
		Crops:    services.NewCropService(st.repos.Crops),
		Messages: services.NewMessageService(st.repos.Messages),
		Prices:   services.NewMarketService(st.repos.MarketPrices),
		Ping:     st.ping,
		Limiter:  limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config) (*store, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, database, err := db.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureIndexes(ctx, database); err != nil {
			// registrations still work; only the duplicate-email race stays open
			slog.Warn("mongo indexes", "err", err)
		}
		return &store{
			repos: mongorepo.NewRepositories(database),
			ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func() { disconnectMongo(client) },
		}, nil

	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrations: %w", err)
			}
		}
		return &store{
			repos: postgres.NewRepositories(pool),
			ping:  pool.Ping,
			close: pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func disconnectMongo(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		slog.Warn("mongo disconnect", "err", err)
	}
}

// rateLimiter shares the budget through Redis when REDIS_URL is set.
func rateLimiter(cfg config.Config) (func(http.Handler) http.Handler, func()) {
	if cfg.RedisURL == "" {
		return middleware.RateLimit(cfg.RateRPS), func() {}
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Warn("REDIS_URL ignored, using in-process limiter", "err", err)
		return middleware.RateLimit(cfg.RateRPS), func() {}
	}
	rdb := redis.NewClient(opts)
	return middleware.RedisRateLimit(rdb, cfg.RateRPS), func() { _ = rdb.Close() }
}
