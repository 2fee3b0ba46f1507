package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"crave/config"
	logs "crave/internal/infra/log"
	"crave/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:   Apply every pending migration
// - down: Roll back the given number of migrations

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var run func(*migrations.Runner) error
	switch os.Args[1] {
	case "up":
		if err := upCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(1)
		}
		run = (*migrations.Runner).Up
	case "down":
		if err := downCmd.Parse(os.Args[2:]); err != nil {
			os.Exit(1)
		}
		if *downSteps < 1 {
			fmt.Fprintln(os.Stderr, "steps must be at least 1")
			os.Exit(1)
		}
		run = func(r *migrations.Runner) error { return r.Down(*downSteps) }
	case "help", "-h", "--help":
		printUsage()

		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err := migrate(run); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func migrate(run func(*migrations.Runner) error) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	runner, err := migrations.NewRunner(sqlDB, logger)
	if err != nil {
		_ = sqlDB.Close()

		return err
	}
	defer func() {
		if closeErr := runner.Close(); closeErr != nil {
			logger.Warn("Failed to close migration runner", slog.Any("error", closeErr))
		}
	}()

	return run(runner)
}

func printUsage() {
	fmt.Println(`Usage: migrate <command> [options]

Commands:
  up      Apply every pending migration
  down    Roll back migrations (-steps, default 1)`)
}
