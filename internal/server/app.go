// Package server wires the chatsync server together: storage, the sync
// engine, should-sync fan-out, push notifications and the gRPC and HTTP
// endpoints.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/chatsync/internal/logging"
	"github.com/dmitrijs2005/chatsync/internal/server/config"
	gs "github.com/dmitrijs2005/chatsync/internal/server/grpc"
	"github.com/dmitrijs2005/chatsync/internal/server/httpapi"
	"github.com/dmitrijs2005/chatsync/internal/server/notify"
	"github.com/dmitrijs2005/chatsync/internal/server/pushnotify"
	"github.com/dmitrijs2005/chatsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chatsync/internal/server/services"
	"github.com/dmitrijs2005/chatsync/internal/server/syncengine"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// MemoryDSN selects the in-process store instead of PostgreSQL.
const MemoryDSN = "memory://"

type App struct {
	config *config.Config
	logger logging.Logger

	db         *sql.DB
	repos      repomanager.RepositoryManager
	hub        *notify.Hub
	publisher  notify.Publisher
	broker     *notify.RedisBroker
	redis      *redis.Client
	dispatcher pushnotify.Dispatcher
	queue      *pushnotify.Server
	closers    []func() error

	engine *syncengine.Engine
	grpc   *gs.GRPCServer
	http   *httpapi.Server
}

// NewApp opens storage and builds every component. Nothing listens until Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	if err := app.openStore(ctx); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initMessaging(ctx); err != nil {
		app.Close()
		return nil, err
	}

	opts := []syncengine.Option{
		syncengine.WithPublisher(app.publisher),
		syncengine.WithConcurrency(c.PushConcurrency),
	}
	if app.dispatcher != nil {
		opts = append(opts, syncengine.WithDispatcher(app.dispatcher))
	}
	app.engine = syncengine.New(app.repos, logger, opts...)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, c.SecretKey, gs.Services{
		Users:       services.NewUserService(app.repos, c, logger),
		Devices:     services.NewDeviceService(app.repos, logger),
		Preferences: services.NewPreferencesService(app.repos),
		Attachments: services.NewAttachmentService(app.repos, c),
		Engine:      app.engine,
		Hub:         app.hub,
	})
	app.http = httpapi.NewServer(c.EndpointAddrHTTP, logger, c.SecretKey, app.hub)

	return app, nil
}

func (app *App) openStore(ctx context.Context) error {
	if strings.HasPrefix(app.config.DatabaseDSN, MemoryDSN) {
		app.logger.Warn(ctx, "using in-memory store; data is lost on exit")
		app.repos = repomanager.NewMemoryRepositoryManager()
		return nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	app.db = db
	app.closers = append(app.closers, db.Close)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager(db)
	if err := m.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	app.repos = m
	return nil
}

// initMessaging picks Redis-backed fan-out and queueing when RedisURL is
// set, in-process equivalents otherwise. Push notifications stay off while
// no Firebase project is configured.
func (app *App) initMessaging(ctx context.Context) error {
	c := app.config
	app.hub = notify.NewHub(app.logger)
	app.publisher = app.hub

	var worker *pushnotify.Worker
	if c.FCMProjectID != "" {
		sender, err := pushnotify.NewFCMSender(ctx, pushnotify.FCMOptions{
			ProjectID:       c.FCMProjectID,
			CredentialsFile: c.FCMCredentialsFile,
			Endpoint:        c.FCMEndpoint,
			PackageName:     c.FCMPackageName,
		})
		if err != nil {
			return err
		}
		worker = pushnotify.NewWorker(app.repos, sender, app.logger)
	}

	if c.RedisURL == "" {
		if worker != nil {
			app.dispatcher = pushnotify.NewInlineDispatcher(worker, app.logger)
		}
		return nil
	}

	redisOpts, err := redis.ParseURL(c.RedisURL)
	if err != nil {
		return fmt.Errorf("redis url: %w", err)
	}
	app.redis = redis.NewClient(redisOpts)
	app.closers = append(app.closers, app.redis.Close)
	app.broker = notify.NewRedisBroker(app.redis, app.hub, app.logger)
	app.publisher = app.broker

	if worker == nil {
		return nil
	}
	queueOpt, err := asynq.ParseRedisURI(c.RedisURL)
	if err != nil {
		return fmt.Errorf("redis url: %w", err)
	}
	d := pushnotify.NewAsynqDispatcher(queueOpt)
	app.closers = append(app.closers, d.Close)
	app.dispatcher = d
	app.queue = pushnotify.NewServer(queueOpt, worker, c.PushConcurrency, app.logger)
	return nil
}

// Close releases storage and Redis connections.
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		errs = append(errs, app.closers[i]())
	}
	app.closers = nil
	return errors.Join(errs...)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled, a signal arrives or a component fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(ctx) })
	g.Go(func() error { return app.http.Run(ctx) })
	if app.broker != nil {
		g.Go(func() error { return app.broker.Run(ctx) })
	}
	if app.queue != nil {
		g.Go(func() error { return app.queue.Run(ctx) })
	}

	err := g.Wait()
	app.engine.Wait()
	if d, ok := app.dispatcher.(*pushnotify.InlineDispatcher); ok {
		d.Wait()
	}
	app.logger.Info(context.WithoutCancel(ctx), "App stopped")
	return errors.Join(err, app.Close())
}
