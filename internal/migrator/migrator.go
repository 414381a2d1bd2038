package migrator

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

type Migrator struct {
	db            *sql.DB
	migrationsDir string
}

func NewMigrator(db *sql.DB, migrationsDir string) *Migrator {
	return &Migrator{
		db:            db,
		migrationsDir: migrationsDir,
	}
}

// Up applies pending migrations and returns the schema version afterwards.
func (m *Migrator) Up(ctx context.Context) (int64, error) {
	const op = "migrator.Up"

	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := goose.UpContext(ctx, m.db, m.migrationsDir); err != nil {
		return 0, fmt.Errorf("%s: %s: %w", op, m.migrationsDir, err)
	}

	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("%s: read version: %w", op, err)
	}

	return version, nil
}

func (m *Migrator) Close() error { return m.db.Close() }
