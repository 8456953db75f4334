// Package server initializes and runs the note board server: it opens the
// database, applies migrations, wires the services and starts the HTTP API
// with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkalens/wallpaper/internal/hashx"
	"github.com/mkalens/wallpaper/internal/logging"
	"github.com/mkalens/wallpaper/internal/server/config"
	"github.com/mkalens/wallpaper/internal/server/httpapi"
	"github.com/mkalens/wallpaper/internal/server/repositories/repomanager"
	"github.com/mkalens/wallpaper/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	wallService *services.WallService
	memoService *services.MemoService
}

func NewApp(cfg *config.Config) (*App, error) {
	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	hasher := hashx.NewHasher(cfg.BcryptCost)
	ws := services.NewWallService(db, rm, hasher)
	ms := services.NewMemoService(db, rm, hasher)

	return &App{config: cfg, logger: logger, db: db, wallService: ws, memoService: ms}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.wallService, app.memoService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
