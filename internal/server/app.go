// Package server initializes and runs the staffdesk application server.
// It connects to PostgreSQL and Redis, applies schema migrations, wires the
// authentication core into the HTTP API and handles graceful shutdown.
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
	"github.com/pressly/goose/v3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/dmitrijs2005/staffdesk/internal/server/auth"
	"github.com/dmitrijs2005/staffdesk/internal/server/config"
	"github.com/dmitrijs2005/staffdesk/internal/server/employees"
	"github.com/dmitrijs2005/staffdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/staffdesk/internal/server/migrations"
	"github.com/dmitrijs2005/staffdesk/internal/server/positions"
	"github.com/dmitrijs2005/staffdesk/internal/server/revocation"
	"github.com/dmitrijs2005/staffdesk/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	rdb    *goredis.Client
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(l)

	// the token codec is constructed first: a missing secret key must stop
	// the process before it accepts any traffic
	codec, err := auth.NewCodec(cfg.SecretKey, cfg.TokenValidity)
	if err != nil {
		return nil, fmt.Errorf("auth init error: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	denylist := revocation.NewRedisStore(rdb, cfg.TokenValidity)
	gate := auth.NewGate(codec, denylist)

	us := users.NewService(users.NewPostgresRepository(db), auth.NewHasher(), codec, denylist)
	es := employees.NewService(employees.NewPostgresRepository(db))
	pc := positions.NewClient(cfg.PositionsAPIURL)

	srv, err := httpapi.NewServer(cfg.EndpointAddr, logger, gate, us, es, pc)
	if err != nil {
		return nil, fmt.Errorf("server init error: %w", err)
	}

	return &App{config: cfg, logger: logger, db: db, rdb: rdb, server: srv}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.rdb.Close(); err != nil {
		app.logger.Error(ctx, "error closing redis client", "error", err)
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing database", "error", err)
	}
}
