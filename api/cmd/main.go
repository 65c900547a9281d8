package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/config"
	rediscache "github.com/baechuer/event-rest-api/internal/infrastructure/caching/redis"
	"github.com/baechuer/event-rest-api/internal/infrastructure/db/postgres"
	"github.com/baechuer/event-rest-api/internal/infrastructure/memory"
	rabbitpub "github.com/baechuer/event-rest-api/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/event-rest-api/internal/logger"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
	"github.com/baechuer/event-rest-api/internal/transport/http/handlers"
	"github.com/baechuer/event-rest-api/internal/transport/http/router"
)

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Cache     *rediscache.Cache
	Publisher *rabbitpub.Publisher
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openDB(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db init failed")
	}

	app, err := NewApp(ctx, cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app init failed")
	}
	defer app.Close()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			zlog.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("listening")
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal().Err(err).Msg("server crashed")
	}
	zlog.Info().Msg("server stopped")
}

// openDB returns nil when no DATABASE_URL is configured.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, nil
	}

	if u, err := url.Parse(dsn); err == nil {
		zlog.Info().
			Str("db_user", u.User.Username()).
			Str("db_host", u.Host).
			Str("db_db", u.Path).
			Msg("db config loaded")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewApp wires the service. A nil db selects the in-memory store.
func NewApp(ctx context.Context, cfg *config.Config, db *sql.DB) (*App, error) {
	app := &App{Config: cfg, DB: db}
	checks := map[string]handlers.Check{}

	// 1) Infrastructure
	var repo event.EventRepo
	if db != nil {
		pg := postgres.New(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		repo = pg
		checks["postgres"] = db.PingContext
	} else {
		zlog.Warn().Msg("DATABASE_URL empty: using in-memory event store")
		repo = memory.New()
	}

	var cache event.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(ctx, cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			return nil, err
		}
		app.Cache = c
		cache = c
		checks["redis"] = c.Ping
		zlog.Info().Dur("ttl", cfg.CacheTTLDetails).Msg("redis cache ready")
	} else {
		zlog.Warn().Msg("REDIS_URL empty: event cache disabled")
	}

	var pub event.EventPublisher = event.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, rabbitpub.Options{Exchange: cfg.RabbitExchange})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.Publisher = p
		pub = p
		zlog.Info().Str("exchange", p.Exchange()).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	// 2) Application
	svc := event.New(repo, event.SystemClock{}, pub, cache, cfg.CacheTTLDetails).
		WithPaging(cfg.PageDefaultSize, cfg.PageMaxSize)

	// 3) Transport
	origin := hal.Origin{PublicURL: cfg.PublicBaseURL, TrustForwarded: cfg.TrustProxyHeaders}
	h := handlers.NewEventsHandler(svc, origin)
	idx := handlers.NewIndexHandler(origin)
	z := handlers.NewHealthHandler(checks)

	// 4) Router + server
	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, idx, z, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}

func (a *App) Close() {
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}
