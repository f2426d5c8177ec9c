package migration

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Config holds migration configuration
type Config struct {
	MigrationsPath string
	DatabaseURL    string
	Logger         *zap.Logger
}

// Runner handles database migrations
type Runner struct {
	config *Config
	logger *zap.Logger
}

// NewRunner creates a new migration runner
func NewRunner(config *Config) *Runner {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		config: config,
		logger: logger,
	}
}

// Up runs all pending migrations
func (r *Runner) Up() error {
	r.logger.Info("running database migrations")

	m, err := r.getMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("no new migrations to run")
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Info("migrations completed")
	return nil
}

// Down rolls back the last migration
func (r *Runner) Down() error {
	r.logger.Info("rolling back last migration")

	m, err := r.getMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("no migrations to roll back")
			return nil
		}
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	return nil
}

// Force sets the migration version without running migrations. Use this to
// recover from a dirty state.
func (r *Runner) Force(version int) error {
	r.logger.Warn("forcing migration version", zap.Int("version", version))

	m, err := r.getMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	if err := m.Force(version); err != nil {
		return fmt.Errorf("failed to force version: %w", err)
	}
	return nil
}

// Version returns the current migration version
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.getMigrate()
	if err != nil {
		return 0, false, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}

	return version, dirty, nil
}

func (r *Runner) getMigrate() (*migrate.Migrate, error) {
	db, err := sql.Open("postgres", r.config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", r.config.MigrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}

// AutoMigrate brings the schema up to date on application start. It refuses
// to run against a dirty database.
func AutoMigrate(dbURL, migrationsPath string, logger *zap.Logger) error {
	runner := NewRunner(&Config{
		MigrationsPath: migrationsPath,
		DatabaseURL:    dbURL,
		Logger:         logger,
	})

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("database in dirty state at version %d", version)
	}

	logger.Info("current migration version", zap.Uint("version", version))

	if err := runner.Up(); err != nil {
		return err
	}

	newVersion, _, err := runner.Version()
	if err != nil {
		return err
	}
	logger.Info("migration completed",
		zap.Uint("from_version", version), zap.Uint("to_version", newVersion))
	return nil
}
