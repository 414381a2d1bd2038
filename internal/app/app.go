package app

import (
	"context"
	"errors"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/fleet-maintenance/internal/config"
	envconfig "github.com/you-humble/fleet-maintenance/internal/config/env"
	"github.com/you-humble/fleet-maintenance/internal/metrics"
	"github.com/you-humble/fleet-maintenance/internal/transport/http/health"
	"github.com/you-humble/fleet-maintenance/internal/transport/http/middleware"
	"github.com/you-humble/fleet-maintenance/platform/closer"
	"github.com/you-humble/fleet-maintenance/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if config.C().Store.Driver() != envconfig.DriverPostgres {
		return nil
	}

	version, err := a.di.Migrator(ctx).Up(ctx)
	if err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}

	logger.Info(ctx, "migrations applied", logger.Int64("schema_version", version))
	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	r := a.di.Router(ctx)
	r.Use(
		chimw.RequestID,
		middleware.RequestLogger,
		middleware.Metrics,
		chimw.Recoverer,
	)

	r.Route("/api/v1", a.di.FleetHandler(ctx).Routes)
	r.Handle("/ws/changes", a.di.StreamHandler(ctx))
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/health", health.Handler(cfg.Server.DBReadTimeout(), map[string]health.Probe{
		"store": a.di.StoreProbe(ctx),
	}))

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	if config.C().Kafka.Enabled() {
		eg.Go(func() error {
			logger.Info(egCtx,
				"🚀 collection change consumer running",
				logger.Strings("kafka_brokers", config.C().Kafka.Brokers()),
				logger.String("instance_id", config.C().Store.InstanceID()),
			)
			if err := a.di.ChangeConsumer(egCtx).RunCollectionChangedConsume(egCtx); err != nil {
				return err
			}

			return nil
		})
	}

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 fleet maintenance server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("store", config.C().Store.Driver()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(context.Background(), "🛑 Server shutdown...")
		return shutdownServer(a.server)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func shutdownServer(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
	defer cancel()

	return server.Shutdown(ctx)
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
