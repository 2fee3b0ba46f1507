// Package migrations applies the embedded PostgreSQL schema with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"io/fs"
	"log/slog"

	"crave/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Source returns the embedded migration files as a golang-migrate source.
func Source() (source.Driver, error) {
	sub, err := fs.Sub(files, "sql")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	driver, err := iofs.New(sub, ".")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return driver, nil
}

// Runner wraps a migrate instance bound to one database.
// Closing it also closes the *sql.DB it was built from.
type Runner struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewRunner prepares migrations against db.
func NewRunner(db *sql.DB, logger *slog.Logger) (*Runner, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate postgres driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", dbDriver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return &Runner{m: m, logger: logger}, nil
}

// Up applies every pending migration.
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Schema already up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	r.log("Schema migrated up")

	return nil
}

// Down rolls back the given number of migrations.
func (r *Runner) Down(steps int) error {
	if err := r.m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}

		return errors.Wrap(err, "failed to roll back migrations")
	}

	r.log("Schema migrated down")

	return nil
}

// Close releases the source and the database.
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()

	return errors.Join(srcErr, dbErr)
}

func (r *Runner) log(msg string) {
	version, dirty, err := r.m.Version()
	if err != nil {
		r.logger.Warn(msg, slog.Any("error", err))

		return
	}

	r.logger.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}
