package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// RunMigrations brings the ledger schema (accounts, entries, shards,
// interest history) up to the newest version found under migrationsPath.
func RunMigrations(databaseURL, migrationsPath string) error {
	source := "file://" + migrationsPath

	m, err := migrate.New(source, databaseURL)
	if err != nil {
		return fmt.Errorf("open ledger migrations at %s: %w", source, err)
	}
	defer m.Close()

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply ledger migrations: %w", upErr)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read ledger schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("ledger schema version %d is dirty", version)
	}

	log.Info().
		Uint("schema_version", version).
		Bool("changed", upErr == nil).
		Msg("ledger schema ready")
	return nil
}
