package database

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/deppfellow/places-api/internal/config"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	version    int32
	versionErr error
	migrateErr error
	targets    []int32
}

func (f *fakeMigrator) GetCurrentVersion(context.Context) (int32, error) {
	return f.version, f.versionErr
}

func (f *fakeMigrator) MigrateTo(_ context.Context, target int32) error {
	f.targets = append(f.targets, target)
	if f.migrateErr != nil {
		return f.migrateErr
	}
	f.version = target
	return nil
}

func TestRevertSchemaMigratesToZero(t *testing.T) {
	logger := zerolog.Nop()
	m := &fakeMigrator{version: 1}

	require.NoError(t, revertSchema(context.Background(), &logger, m))
	assert.Equal(t, []int32{0}, m.targets)
	assert.Zero(t, m.version)
}

func TestRevertSchemaSkipsEmptySchema(t *testing.T) {
	logger := zerolog.Nop()
	m := &fakeMigrator{version: 0}

	require.NoError(t, revertSchema(context.Background(), &logger, m))
	assert.Empty(t, m.targets)
}

func TestRevertSchemaErrors(t *testing.T) {
	logger := zerolog.Nop()
	boom := errors.New("boom")

	err := revertSchema(context.Background(), &logger, &fakeMigrator{versionErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "retrieving current database migration version")

	err = revertSchema(context.Background(), &logger, &fakeMigrator{version: 1, migrateErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "reverting database schema")
}

// liveConfig builds a config from PLACES_TEST_DATABASE_URL, skipping the
// test when it is unset.
func liveConfig(t *testing.T) *config.Config {
	t.Helper()

	url := os.Getenv("PLACES_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PLACES_TEST_DATABASE_URL not set")
	}

	parsed, err := pgx.ParseConfig(url)
	require.NoError(t, err)

	return &config.Config{
		Database: config.DatabaseConfig{
			Host:     parsed.Host,
			Port:     int(parsed.Port),
			User:     parsed.User,
			Password: parsed.Password,
			Name:     parsed.Database,
			SSLMode:  "disable",
		},
	}
}

func placesTableExists(t *testing.T, ctx context.Context, cfg *config.Config) bool {
	t.Helper()

	conn, err := pgx.Connect(ctx, DSN(cfg.Database))
	require.NoError(t, err)
	defer conn.Close(context.Background())

	var exists bool
	require.NoError(t, conn.QueryRow(ctx, `SELECT to_regclass('places') IS NOT NULL`).Scan(&exists))
	return exists
}

func TestMigrateAndRevertAgainstPostgres(t *testing.T) {
	cfg := liveConfig(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	require.NoError(t, Migrate(ctx, &logger, cfg))
	require.NoError(t, Migrate(ctx, &logger, cfg))
	assert.True(t, placesTableExists(t, ctx, cfg))

	require.NoError(t, Revert(ctx, &logger, cfg))
	assert.False(t, placesTableExists(t, ctx, cfg))

	require.NoError(t, Revert(ctx, &logger, cfg))
	assert.False(t, placesTableExists(t, ctx, cfg))
}
