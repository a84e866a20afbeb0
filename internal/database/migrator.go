package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/deppfellow/places-api/internal/config"
	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"
)

// All SQL files under migrations/ are embedded at compile time,
// so the binary carries its schema.
//
//go:embed migrations/*.sql
var migrations embed.FS

// schemaVersionTable stores the applied migration version.
const schemaVersionTable = "schema_version"

// newMigrator opens a single connection (not a pool) and loads the
// embedded migrations into a tern migrator. The caller closes the conn.
func newMigrator(ctx context.Context, cfg *config.Config) (*pgx.Conn, *tern.Migrator, error) {
	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	if err != nil {
		return nil, nil, err
	}

	m, err := tern.NewMigrator(ctx, conn, schemaVersionTable)
	if err != nil {
		conn.Close(context.Background())
		return nil, nil, fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		conn.Close(context.Background())
		return nil, nil, fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		conn.Close(context.Background())
		return nil, nil, fmt.Errorf("loading database migrations: %w", err)
	}

	return conn, m, nil
}

// Migrate runs database migrations up to the latest version.
//
// It creates the places table on a fresh database and is a no-op on an
// up-to-date one.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, m, err := newMigrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	if from == int32(len(m.Migrations)) {
		logger.Info().Msgf("database schema up to date, version %d", len(m.Migrations))
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, len(m.Migrations))
	}
	return nil
}

// schemaMigrator is the part of *tern.Migrator that Revert drives.
type schemaMigrator interface {
	GetCurrentVersion(ctx context.Context) (int32, error)
	MigrateTo(ctx context.Context, targetVersion int32) error
}

// Revert migrates the schema down to version 0, dropping the places table.
//
// This is the teardown operation. It is only reachable from the CLI.
func Revert(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) error {
	conn, m, err := newMigrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	return revertSchema(ctx, logger, m)
}

func revertSchema(ctx context.Context, logger *zerolog.Logger, m schemaMigrator) error {
	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if from == 0 {
		logger.Info().Msg("database schema already empty, nothing to revert")
		return nil
	}

	if err := m.MigrateTo(ctx, 0); err != nil {
		return fmt.Errorf("reverting database schema: %w", err)
	}

	logger.Info().Msgf("reverted database schema, from %d to 0", from)
	return nil
}
