// Package server initializes and runs the blog API: it opens the database,
// applies migrations, wires repositories, services and the archiver, and
// serves HTTP until a shutdown signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/server/archive"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/httpserver"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// seams for tests
var (
	sqlOpen              = sql.Open
	newRepositoryManager = repomanager.NewPostgresRepositoryManager
	newS3Archiver        = func(ctx context.Context, c *config.Config) (archive.Archiver, error) {
		return archive.NewS3Archiver(ctx, c)
	}
	newFileArchiver = func(dir string) (archive.Archiver, error) {
		return archive.NewFileArchiver(dir)
	}
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	blogService    *services.BlogService
	commentService *services.CommentService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	ctx := context.Background()

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := newRepositoryManager(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("repository manager init error: %w", err)
	}

	archiver, err := buildArchiver(ctx, c, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("archive init error: %w", err)
	}

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		repomanager:    rm,
		userService:    services.NewUserService(db, rm, c),
		blogService:    services.NewBlogService(db, rm, archiver),
		commentService: services.NewCommentService(db, rm),
	}, nil
}

// buildArchiver prefers S3 when a bucket is configured, then a local
// directory, and otherwise discards archived records.
func buildArchiver(ctx context.Context, c *config.Config, logger logging.Logger) (archive.Archiver, error) {
	if !c.ArchiveEnabled() {
		return archive.NopArchiver{}, nil
	}
	if c.S3Bucket != "" {
		logger.Info(ctx, "Archiving deleted blogs", "bucket", c.S3Bucket)
		return newS3Archiver(ctx, c)
	}
	logger.Info(ctx, "Archiving deleted blogs", "dir", c.ArchiveDir)
	return newFileArchiver(c.ArchiveDir)
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

// Run migrates the schema and serves HTTP until ctx is cancelled or a
// shutdown signal is received.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.db.Close()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repomanager.RunMigrations(ctx, app.db); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err)
		return fmt.Errorf("migrations: %w", err)
	}

	s := httpserver.NewHTTPServer(app.config, app.logger, app.userService, app.blogService, app.commentService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
