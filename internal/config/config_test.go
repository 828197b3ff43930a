package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "memory", cfg.Store.Backend)
	require.True(t, cfg.Store.Seed)
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[store]
backend = "sqlite"

[ui]
date_format = "2006-01-02"
start_page = "doctors"
`), 0o644))
	t.Setenv("COURIERAPP_LOG_LEVEL", "debug")
	t.Setenv("COURIERAPP_STORE_SEED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sqlite", cfg.Store.Backend)
	require.False(t, cfg.Store.Seed)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "2006-01-02", cfg.UI.DateFormat)
	require.Equal(t, "doctors", cfg.UI.StartPage)
	require.Equal(t, "Local", cfg.UI.Timezone)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("COURIERAPP_STORE_BACKEND", "postgres")
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.ErrorContains(t, err, "store.backend")
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[store\nbackend ="), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default()
	want.Store.Backend = "sqlite"
	want.Log.Path = ""
	want.UI.StartPage = "orders"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDefaultPathHonoursEnv(t *testing.T) {
	t.Setenv("COURIERAPP_CONFIG", "/tmp/elsewhere.toml")
	require.Equal(t, "/tmp/elsewhere.toml", DefaultPath())
}
