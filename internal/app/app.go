package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stayinn/rating-gateway/internal/api"
	"github.com/stayinn/rating-gateway/internal/api/handler"
	"github.com/stayinn/rating-gateway/internal/infrastructure/client"
	mongodb "github.com/stayinn/rating-gateway/internal/infrastructure/db/mongo"
	redisdb "github.com/stayinn/rating-gateway/internal/infrastructure/db/redis"
	"github.com/stayinn/rating-gateway/internal/infrastructure/queue"
	"github.com/stayinn/rating-gateway/internal/pkg/config"
	"github.com/stayinn/rating-gateway/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// GatewayApp owns the HTTP server and the connections it depends on.
type GatewayApp struct {
	e     *echo.Echo
	audit *queue.Dispatcher
	mongo *mongo.Client
	redis *goredis.Client
	lg    zerolog.Logger
	cfg   *config.Config
}

func New(ctx context.Context, cfg *config.Config) (*GatewayApp, error) {
	lg := logger.Component("app")

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return nil, fmt.Errorf("mongo initializing error: %w", err)
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		_ = mongoClient.Disconnect(ctx)
		return nil, fmt.Errorf("redis initializing error: %w", err)
	}

	attempts := mongodb.NewRatingAttemptRepository(db)
	if err := attempts.EnsureIndexes(ctx); err != nil {
		lg.Warn().Err(err).Msg("failed to ensure rating_attempts indexes")
	}
	audit := queue.NewDispatcher(0, attempts, logger.Component("audit"))
	audit.Start()

	httpClient := &http.Client{Timeout: cfg.Upstreams.Timeout}
	clientLog := logger.Component("upstream")

	accommodations := client.NewAccommodationClient(
		httpClient,
		cfg.Upstreams.AccommodationURL,
		client.NewCircuitBreaker("accommodation-service", cfg.Upstreams.BreakerTimeout, clientLog),
	)
	ratings := client.NewRatingClient(
		httpClient,
		cfg.Upstreams.RatingURL,
		client.NewCircuitBreaker("rating-service", cfg.Upstreams.BreakerTimeout, clientLog),
	)

	e := api.NewRouter(api.Dependencies{
		Accommodations: accommodations,
		Ratings:        ratings,
		Attempts:       audit,
		Drafts:         redisdb.NewDraftStore(rdb),
		Toasts:         redisdb.NewToastQueue(rdb, logger.Component("toasts")),
		Readiness: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		JWTSecret: cfg.JWTSecret,
		Log:       logger.Component("http"),
	})

	return &GatewayApp{
		e:     e,
		audit: audit,
		mongo: mongoClient,
		redis: rdb,
		lg:    lg,
		cfg:   cfg,
	}, nil
}

// Run serves until ctx is cancelled or the listener fails, then shuts down.
func (a *GatewayApp) Run(ctx context.Context) {
	addr := ":" + a.cfg.Port
	a.lg.Info().Str("addr", addr).Str("env", a.cfg.Env).Msg("starting server")

	errCh := make(chan error, 1)
	go func() {
		if err := a.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		a.lg.Error().Err(err).Msg("server start error")
	}

	ctxS, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.Stop(ctxS); err != nil { //nolint:contextcheck
		a.lg.Error().Err(err).Msg("shutdown error")
	}
}

func (a *GatewayApp) Stop(ctx context.Context) error {
	var errs []error
	if err := a.e.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
	}
	a.audit.Close()
	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("redis close error: %w", err))
	}
	if err := a.mongo.Disconnect(ctx); err != nil {
		errs = append(errs, fmt.Errorf("mongo disconnect error: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	a.lg.Info().Msg("shut down successfully")
	return nil
}
