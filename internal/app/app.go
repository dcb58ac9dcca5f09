package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/blob"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/auth"
	"github.com/heartmarshall/plantcare-backend/internal/config"
	"github.com/heartmarshall/plantcare-backend/internal/transport/middleware"
	"github.com/heartmarshall/plantcare-backend/internal/transport/rest"
)

// Run starts the HTTP server and blocks until ctx is canceled or the process
// receives SIGINT/SIGTERM, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Schedule.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	blobs, err := blob.NewFSStore(cfg.Photos.Dir, cfg.Photos.PublicURL)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      newHandler(cfg, logger, pool, blobs, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler builds the routed, middleware-wrapped HTTP handler.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	blobs *blob.FSStore,
	limiter *middleware.RateLimiter,
) http.Handler {
	svc := NewServices(cfg, logger, pool, blobs)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	routes := rest.Routes{
		Health: rest.NewHealthHandler(BuildVersion(), map[string]rest.Probe{
			"database": pool.Ping,
			"photos":   blobs.Ping,
		}),
		Plants:       rest.NewPlantHandler(svc.Plants, logger, cfg.Photos.MaxBytes, cfg.Schedule.Location),
		Care:         rest.NewCareHandler(svc.Care, logger, cfg.Schedule.Location),
		Schedule:     rest.NewScheduleHandler(svc.Schedule, logger, cfg.Schedule.Location),
		Photos:       http.FileServer(http.Dir(blobs.Dir())),
		PhotosPrefix: cfg.Photos.PublicURL,
		UploadLimit:  limiter.Limit(cfg.Photos.UploadsPerMinute),
	}

	return rest.NewRouter(routes, middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Timezone,
		middleware.Auth(jwtManager),
	))
}
