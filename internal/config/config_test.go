package config_test

import (
	"testing"

	"studyplanner/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "sqlite3://studify.db", cfg.DatabaseURL)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, 100, cfg.ListMaxLimit)
	require.Equal(t, int64(1), cfg.DefaultActorID)
	require.True(t, cfg.AutoMigrate)
	require.False(t, cfg.S3.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pw@localhost:5432/study?sslmode=disable")
	t.Setenv("LIST_MAX_LIMIT", "25")
	t.Setenv("DEFAULT_ACTOR_ID", "7")
	t.Setenv("S3_BUCKET_NAME", "avatars")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://user:pw@localhost:5432/study?sslmode=disable", cfg.DatabaseURL)
	require.Equal(t, 25, cfg.ListMaxLimit)
	require.Equal(t, int64(7), cfg.DefaultActorID)
	require.True(t, cfg.S3.Enabled())
}
