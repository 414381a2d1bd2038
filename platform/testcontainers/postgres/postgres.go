package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/you-humble/fleet-maintenance/platform/logger"
)

const startupTimeout = 1 * time.Minute

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName string
	Database  string
	Username  string
	Password  string
	Logger    Logger
}

type Option func(*Config)

func WithImageName(image string) Option { return func(c *Config) { c.ImageName = image } }
func WithDatabase(db string) Option      { return func(c *Config) { c.Database = db } }
func WithLogger(l Logger) Option         { return func(c *Config) { c.Logger = l } }

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

type Container struct {
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	dsn       string
	cfg       *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		ImageName: "postgres:17.0-alpine3.20",
		Database:  "fleet",
		Username:  "fleet",
		Password:  "fleet",
		Logger:    &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	container, err := tcpostgres.Run(ctx,
		cfg.ImageName,
		tcpostgres.WithDatabase(cfg.Database),
		tcpostgres.WithUsername(cfg.Username),
		tcpostgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "start postgres container")
	}

	success := false
	defer func() {
		if !success {
			if err := container.Terminate(ctx); err != nil {
				cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
			}
		}
	}()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, errors.Wrap(err, "postgres connection string")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "create pg pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	cfg.Logger.Info(ctx, "Postgres container started", zap.String("database", cfg.Database))
	success = true

	return &Container{container: container, pool: pool, dsn: dsn, cfg: cfg}, nil
}

func (c *Container) Pool() *pgxpool.Pool { return c.pool }

func (c *Container) DSN() string { return c.dsn }

func (c *Container) Terminate(ctx context.Context) error {
	c.pool.Close()

	if err := c.container.Terminate(ctx); err != nil {
		c.cfg.Logger.Error(ctx, "failed to terminate postgres container", zap.Error(err))
		return err
	}

	c.cfg.Logger.Info(ctx, "Postgres container terminated")

	return nil
}
