package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigmart/internal/config"
	"github.com/GlebRadaev/gigmart/internal/handlers"
	"github.com/GlebRadaev/gigmart/internal/memstore"
	"github.com/GlebRadaev/gigmart/internal/pg"
	"github.com/GlebRadaev/gigmart/internal/repo"
	"github.com/GlebRadaev/gigmart/internal/service"
	"github.com/GlebRadaev/gigmart/pkg/logger"
	"github.com/GlebRadaev/gigmart/pkg/ratelimit"
)

const limiterCleanupInterval = time.Minute

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	pool    *pgxpool.Pool
	limiter *ratelimit.Limiter

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.cfg = cfg

	if err = a.wire(ctx); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.String("storage", cfg.Storage),
		zap.String("reward_policy", cfg.RewardPolicy),
	)
	return nil
}

// wire builds storage, services and handlers from a.cfg.
func (a *Application) wire(ctx context.Context) error {
	var err error
	if a.repo, err = a.buildRepositories(ctx); err != nil {
		return err
	}
	if a.srv, err = service.New(a.repo, a.cfg); err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	if a.cfg.AdminLogin != "" {
		if err = a.srv.AuthService.EnsureAdmin(ctx, a.cfg.AdminLogin, a.cfg.AdminPassword); err != nil {
			return fmt.Errorf("can't bootstrap admin: %w", err)
		}
	}

	if a.cfg.RateLimit > 0 {
		a.limiter = ratelimit.New(a.cfg.RateLimit, a.cfg.RateBurst, ratelimit.ByRemoteAddr)
		a.startLimiterCleanup(ctx)
	}
	a.api = handlers.New(a.srv, a.limiter, a.cfg.CORSOrigins)
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, data is lost on restart")
		return repo.NewInMemory(memstore.New(a.cfg.LockTimeout)), nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return nil, fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return nil, fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	return repo.New(pg.New(pool), pg.NewTXManager(pool, a.cfg.LockTimeout)), nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startLimiterCleanup(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.limiter.Run(ctx, limiterCleanupInterval)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
