package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/supabase-community/gotrue-go"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"procuroid.app/internal/auth"
	"procuroid.app/internal/config"
	"procuroid.app/internal/jobs"
	"procuroid.app/internal/repositories"
	"procuroid.app/internal/services"
	"procuroid.app/pkg/directory"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type Application struct {
	logger       *slog.Logger
	config       config.Config
	ctx          context.Context
	ctxCancel    context.CancelFunc
	db           postgres.DB
	services     *services.Services
	repositories *repositories.Repositories
	jobQueue     *threading.JobQueue
}

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))
	db, err := postgres.Connect(
		logger,
		cfg.DBDsn,
		25, //nolint:mnd //no magic number
		"15m",
		60,             //nolint:mnd //no magic number
		10*time.Second, //nolint:mnd //no magic number
		5*time.Minute,  //nolint:mnd //no magic number
	)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	supabase := gotrue.New(
		cfg.SupabaseProjRef,
		cfg.SupabaseAPIKey,
	)

	app := NewApplication(
		logger,
		cfg,
		db,
		services.NewAuthService(supabase, cfg.AccessExpiry),
		directory.New(logger),
	)
	defer app.ctxCancel()

	err = app.ApplyMigrations(db)
	if err != nil {
		panic(err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err = httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(
	logger *slog.Logger,
	cfg config.Config,
	db postgres.DB,
	authService auth.Service,
	directoryClient directory.Client,
) *Application {
	//nolint:mnd //no magic number
	jobQueue := threading.NewJobQueue(logger, 2, 100)

	ctx, cancel := context.WithCancel(context.Background())

	spandb := postgres.NewSpanDB(db)

	app := &Application{
		logger:       logger,
		config:       cfg,
		ctx:          ctx,
		ctxCancel:    cancel,
		db:           spandb,
		services:     nil,
		repositories: nil,
		jobQueue:     jobQueue,
	}

	app.repositories = repositories.New(app.db)
	app.services = services.New(
		logger,
		cfg,
		jobQueue,
		app.repositories,
		authService,
	)

	app.setJobs(directoryClient)

	return app
}

func (app *Application) setJobs(directoryClient directory.Client) {
	err := app.jobQueue.AddJob(
		jobs.NewDiscoveryJob(
			directoryClient,
			app.config.DirectoryURL,
			app.services.Orders,
			app.services.Suppliers,
			app.services.Notifications,
		),
		app.services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	err = app.jobQueue.AddJob(
		jobs.NewReminderJob(
			app.services.Meetings,
			app.services.Orders,
			app.services.Notifications,
		),
		app.services.WebSocket.UpdateState,
	)
	if err != nil {
		panic(err)
	}

	app.services.WebSocket.RegisterTopics(app.jobQueue.FetchJobIDs())
}

func (app *Application) ApplyMigrations(db *pgxpool.Pool) error {
	migrationsDB := stdlib.OpenDBFromPool(db)

	goose.SetLogger(slog.NewLogLogger(app.logger.Handler(), slog.LevelInfo))

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(goose.DialectPostgres)); err != nil {
		return err
	}

	if err := goose.Up(migrationsDB, "migrations"); err != nil {
		return err
	}

	return nil
}
