package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/courierapp/internal/config"
)

// isolate points HOME and the config path at a temp dir so no real user
// files are read or written.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COURIERAPP_CONFIG", filepath.Join(home, "config.toml"))
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDoctorsList(t *testing.T) {
	isolate(t)
	out, err := execute(t, "doctors", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Dr. Sarah Johnson")
	require.Contains(t, out, "Dr. Emily Rodriguez")
	require.Contains(t, out, "01/15/2023")
	require.Contains(t, out, "SPECIALIZATION")
}

func TestDoctorsListQuery(t *testing.T) {
	isolate(t)
	out, err := execute(t, "doctors", "list", "--query", "PEDIA")
	require.NoError(t, err)
	require.Contains(t, out, "Dr. Michael Chen")
	require.NotContains(t, out, "Dr. Sarah Johnson")

	out, err = execute(t, "doctors", "list", "-q", "cardiolgy")
	require.NoError(t, err)
	require.Contains(t, out, "No doctors found matching your search.")
	require.Contains(t, out, `Did you mean "Cardiology"?`)
}

func TestDoctorsStatsOnBothBackends(t *testing.T) {
	isolate(t)
	want := "Total Doctors: 3\nActive Doctors: 2\nTotal Orders: 105\nAvg Orders/Doctor: 35\n"
	for _, backend := range []string{"memory", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, "--backend", backend, "doctors", "stats")
			require.NoError(t, err)
			require.Equal(t, want, out)
		})
	}
}

func TestUnknownBackendFails(t *testing.T) {
	isolate(t)
	_, err := execute(t, "--backend", "postgres", "doctors", "stats")
	require.ErrorContains(t, err, "store.backend")
}

func TestSeedDisabledStartsEmpty(t *testing.T) {
	isolate(t)
	t.Setenv("COURIERAPP_STORE_SEED", "false")
	out, err := execute(t, "doctors", "list")
	require.NoError(t, err)
	require.Contains(t, out, "No doctors available. Add your first doctor!")
}

func TestDriversList(t *testing.T) {
	isolate(t)
	out, err := execute(t, "drivers", "list")
	require.NoError(t, err)
	require.Contains(t, out, "Bob")
	require.Contains(t, out, "Offline")

	out, err = execute(t, "drivers", "list", "--available")
	require.NoError(t, err)
	require.Contains(t, out, "Alice")
	require.Contains(t, out, "Carlos")
	require.NotContains(t, out, "Bob")
}

func TestOrdersList(t *testing.T) {
	isolate(t)
	out, err := execute(t, "orders", "list")
	require.NoError(t, err)
	require.Contains(t, out, "#ORD-002")
	require.Contains(t, out, "456 Elm St")
	require.Contains(t, out, "In Transit")
}

func TestConfigInit(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "nested", "courierapp.toml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	_, err = execute(t, "--config", path, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}
