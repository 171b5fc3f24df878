// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"gatehouse/config"
	"gatehouse/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator wraps golang-migrate. It owns its database pool: closing the migrator closes
// the pool, so it never shares the application's *sql.DB.
type Migrator struct {
	m *migrate.Migrate
}

// Open connects with the configured Postgres settings and prepares the embedded migrations.
func Open(cfg *config.Config, logger *slog.Logger) (*Migrator, error) {
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required for migrations")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect for migrations")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB for migrations")
	}

	m, err := NewWithDB(sqlDB, logger)
	if err != nil {
		_ = sqlDB.Close()

		return nil, err
	}

	return m, nil
}

// NewWithDB builds a migrator on an existing pool. The migrator takes ownership of sqlDB.
func NewWithDB(sqlDB *sql.DB, logger *slog.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
	if err != nil {
		_ = source.Close()

		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		_ = source.Close()

		return nil, errors.Wrap(err, "failed to initialize migrator")
	}
	m.Log = &migrateLogger{logger: logger}

	return &Migrator{m: m}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// Down rolls back every migration. This drops all tables.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to roll back migrations")
	}

	return nil
}

// Steps applies n migrations; negative n rolls back.
func (m *Migrator) Steps(n int) error {
	if err := m.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "failed to migrate %d steps", n)
	}

	return nil
}

// Version returns the applied version, 0 when nothing has been applied.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read migration version")
	}

	return version, dirty, nil
}

// Close releases the migration source and the database pool.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()

	return errors.Join(srcErr, dbErr)
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// RegisterAutoMigrate applies pending migrations on start when migration.autoMigrate is set.
func RegisterAutoMigrate(params Params) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			m, err := Open(params.Config, params.Logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := m.Close(); err != nil {
					params.Logger.Warn("Failed to close migrator", slog.Any("error", err))
				}
			}()

			if err := m.Up(); err != nil {
				return err
			}

			version, _, err := m.Version()
			if err != nil {
				return err
			}
			params.Logger.Info("Database schema up to date", slog.Uint64("version", uint64(version)))

			return nil
		},
	})
}

// migrateLogger routes golang-migrate's progress lines to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}

	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
