package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/internal/config"
	"github.com/GlebRadaev/talentbank/internal/handlers"
	"github.com/GlebRadaev/talentbank/internal/pg"
	"github.com/GlebRadaev/talentbank/internal/repo"
	"github.com/GlebRadaev/talentbank/internal/service"
	"github.com/GlebRadaev/talentbank/internal/service/donationservice"
	"github.com/GlebRadaev/talentbank/internal/service/pushservice"
	"github.com/GlebRadaev/talentbank/internal/storage"
	"github.com/GlebRadaev/talentbank/pkg/auth"
	"github.com/GlebRadaev/talentbank/pkg/clients"
	"github.com/GlebRadaev/talentbank/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

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
	if err := cfg.Validate(); err != nil {
		zap.L().Error("invalid configuration", zap.Error(err))
		return fmt.Errorf("invalid configuration: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	uploads, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("can't prepare upload storage: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.SessionSecret)

	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(cfg, a.repo, service.Deps{
		TXManager: txManager,
		Storage:   uploads,
		JWT:       jwtService,
		Sender:    pushSender(cfg),
	})
	a.api = handlers.New(a.srv, cfg, jwtService)

	if err := a.seedPlaces(ctx); err != nil {
		return fmt.Errorf("can't seed donation places: %w", err)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
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
		return nil, err
	}
	return dbpool, nil
}

// pushSender returns nil when no FCM key is configured, which disables push delivery.
func pushSender(cfg *config.Config) pushservice.Sender {
	if cfg.FCMAPIKey == "" {
		zap.L().Warn("FCM_API_KEY is not set, push notifications are disabled")
		return nil
	}
	return clients.NewFCMClient(cfg.FCMAddress, cfg.FCMAPIKey, clients.NewHTTPClient())
}

func (a *Application) seedPlaces(ctx context.Context) error {
	if a.cfg.DonationPlacesFile == "" {
		return nil
	}
	f, err := os.Open(a.cfg.DonationPlacesFile)
	if err != nil {
		return err
	}
	defer f.Close()

	places, err := donationservice.LoadPlaces(f)
	if err != nil {
		return err
	}
	_, err = a.srv.PlaceSeeder.SeedPlaces(ctx, places)
	return err
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
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
		zap.L().Info("starting http server", zap.String("address", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
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
