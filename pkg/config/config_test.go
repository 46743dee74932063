package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "sqlite", cfg.Database.Type)
	require.Equal(t, int64(10), cfg.Platform.FeePercent)
	require.Equal(t, "KRW", cfg.Platform.Currency)
	require.False(t, cfg.Events.Enable)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PLATFORM_FEE_PERCENT", "15")
	t.Setenv("DATABASE_TYPE", "postgres")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(15), cfg.Platform.FeePercent)
	require.Equal(t, "postgres", cfg.Database.Type)
}
