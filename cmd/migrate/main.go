// Command migrate applies the SQL schema in migrations/ to a postgres
// register database.
//
//	migrate up
//	migrate down [steps]
//	migrate force <version>
//	migrate version
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"dealbook/internal/config"
	"dealbook/internal/logger"
)

const usage = "usage: migrate up | down [steps] | force <version> | version"

type command func(m *migrate.Migrate, args []string) error

var commands = map[string]command{
	"up":      up,
	"down":    down,
	"force":   force,
	"version": version,
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Named("migrate").Fatalw("migration failed", "error", err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("unknown command %q; %s", args[0], usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.DBDriver != "postgres" {
		return fmt.Errorf("DB_DRIVER=%s has no SQL migrations; the server auto-migrates it", cfg.DBDriver)
	}

	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Named("migrate").Warnw("close failed", "error", err)
		}
	}()

	return cmd(m, args[1:])
}

func up(m *migrate.Migrate, _ []string) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("up: %w", err)
	}
	return version(m, nil)
}

func down(m *migrate.Migrate, args []string) error {
	steps, err := intArg(args, 1)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("down %d: %w", steps, err)
	}
	return version(m, nil)
}

// force marks version as applied without running it, clearing a dirty state.
func force(m *migrate.Migrate, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}
	v, err := intArg(args, 0)
	if err != nil {
		return err
	}
	if err := m.Force(v); err != nil {
		return fmt.Errorf("force %d: %w", v, err)
	}
	return version(m, nil)
}

func version(m *migrate.Migrate, _ []string) error {
	v, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		logger.Named("migrate").Info("no migrations applied")
		return nil
	case err != nil:
		return fmt.Errorf("version: %w", err)
	}
	logger.Named("migrate").Infow("schema version", "version", v, "dirty", dirty)
	return nil
}

func intArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", args[0])
	}
	return n, nil
}
