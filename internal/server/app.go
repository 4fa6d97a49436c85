package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/iudanet/filesmanager/internal/server/auth"
	"github.com/iudanet/filesmanager/internal/server/config"
	"github.com/iudanet/filesmanager/internal/server/content"
	"github.com/iudanet/filesmanager/internal/server/files"
	"github.com/iudanet/filesmanager/internal/server/jobs"
	"github.com/iudanet/filesmanager/internal/server/storage/boltdb"
	"github.com/iudanet/filesmanager/internal/server/storage/sqlite"
	"github.com/iudanet/filesmanager/internal/server/users"
)

const (
	sessionSweepInterval = 10 * time.Minute
	shutdownTimeout      = 10 * time.Second
	readHeaderTimeout    = 10 * time.Second
)

// App владеет хранилищами и HTTP сервером
type App struct {
	logger   *slog.Logger
	cfg      *config.Config
	db       *sqlite.Storage
	sessions *boltdb.Storage
	manager  *auth.SessionManager
	server   *http.Server
	stop     func()
}

// NewApp открывает хранилища и собирает компоненты.
// Close освобождает то, что открыл NewApp.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := sqlite.New(ctx, logger, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sessionStore, err := boltdb.New(ctx, cfg.SessionsPath)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	contentStore, err := content.NewStore(logger, cfg.StorageFolder)
	if err != nil {
		_ = sessionStore.Close()
		_ = db.Close()
		return nil, err
	}

	directory := users.NewDirectory(logger, db)
	manager := auth.NewSessionManager(logger, sessionStore, cfg.SessionTTL)
	gate := auth.NewGate(logger, manager, directory)
	fileService := files.NewService(logger, db, contentStore, jobs.NewDispatcher(logger, db))

	handler, stop := NewRouter(Dependencies{
		Logger:        logger,
		Gate:          gate,
		Sessions:      manager,
		Users:         directory,
		Files:         fileService,
		SessionStore:  sessionStore,
		Database:      db,
		AuthRateLimit: cfg.RateLimitAuth,
	})

	return &App{
		logger:   logger,
		cfg:      cfg,
		db:       db,
		sessions: sessionStore,
		manager:  manager,
		stop:     stop,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}, nil
}

// Run обслуживает HTTP до отмены ctx, затем останавливает сервер
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.server.Addr, err)
	}

	return a.Serve(ctx, ln)
}

// Serve как Run, но на готовом listener
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.manager.RunSweeper(ctx, sessionSweepInterval)
	}()

	errCh := make(chan error, 1)
	go func() {
		a.logger.InfoContext(ctx, "HTTP server started",
			slog.String("addr", ln.Addr().String()),
			slog.String("storage_folder", a.cfg.StorageFolder))
		errCh <- a.server.Serve(ln)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			serveErr = fmt.Errorf("failed to shutdown server: %w", err)
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("server failed: %w", err)
		}
	}

	cancel()
	wg.Wait()

	return serveErr
}

// Close закрывает хранилища
func (a *App) Close() error {
	a.stop()
	return errors.Join(a.sessions.Close(), a.db.Close())
}
