package main

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitrack/config"
	"habitrack/di"
	"habitrack/helper"
	otelMocks "habitrack/infras/otel/mocks"
)

func TestMain(m *testing.M) {
	color.NoColor = true

	os.Exit(m.Run())
}

func newServer(t *testing.T) string {
	t.Helper()

	db, err := helper.OpenSQLite(filepath.Join(t.TempDir(), "habits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Server.Env = "test"

	server := httptest.NewServer(di.InitializeWithConnection(cfg, db, otelMocks.NewOtel()))
	t.Cleanup(server.Close)

	return server.URL
}

// resetFlags undoes flag values left over from a previous Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)

	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--server", server, "--config", filepath.Join(t.TempDir(), "config.toml")}, args...))

	err := rootCmd.Execute()

	return out.String(), err
}

func TestHabitsAndCheckins(t *testing.T) {
	server := newServer(t)

	out, err := run(t, server, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: Habit Tracker API is running")

	out, err = run(t, server, "habits", "add", "Read", "-d", "20 pages")
	require.NoError(t, err)
	assert.Contains(t, out, `Created habit "Read"`)

	_, err = run(t, server, "habits", "add", "Read")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Habit with this name already exists")

	_, err = run(t, server, "habits", "add", "x")
	require.Error(t, err)

	out, err = run(t, server, "habits", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Read")

	out, err = run(t, server, "checkins", "set", "1", "2024-01-01", "done")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01  ✓ Done")

	for _, want := range []string{"✗ Missed", "○ Not tracked", "✓ Done"} {
		out, err = run(t, server, "checkins", "toggle", "1", "2024-01-01")
		require.NoError(t, err)
		assert.Contains(t, out, want)
	}

	out, err = run(t, server, "checkins", "list", "1", "--start", "2024-01-01", "--end", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-01  ✓ Done")

	out, err = run(t, server, "checkins", "list", "1", "--start", "2024-01-02")
	require.NoError(t, err)
	assert.Contains(t, out, "No check-ins.")

	out, err = run(t, server, "checkins", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "Read")

	out, err = run(t, server, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Habits: 1")
	assert.Contains(t, out, "This month")

	out, err = run(t, server, "habits", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "20 pages")
	assert.Contains(t, out, "This week")

	out, err = run(t, server, "checkins", "rm", "1", "2024-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2024-01-01")

	_, err = run(t, server, "checkins", "rm", "1", "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Check-in not found")

	_, err = run(t, server, "habits", "rm", "1")
	require.NoError(t, err)

	_, err = run(t, server, "habits", "show", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Habit not found")
}

func TestInvalidArguments(t *testing.T) {
	server := newServer(t)

	_, err := run(t, server, "habits", "show", "abc")
	assert.EqualError(t, err, `invalid habit id "abc"`)

	_, err = run(t, server, "checkins", "set", "1", "01/02/2024", "done")
	assert.Error(t, err)

	_, err = run(t, server, "checkins", "list", "1", "--start", "soon")
	assert.Error(t, err)
}

func TestCLIConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultCLIConfig(), cfg)

	cfg.ServerURL = "http://habits.local:5000"
	cfg.APIKey = "secret"
	require.NoError(t, saveCLIConfig(path, cfg))

	loaded, err := loadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	t.Setenv(envServerURL, "http://env:5000")
	t.Setenv(envAPIKey, "")

	resolved := loaded.resolve("", "")
	assert.Equal(t, "http://env:5000", resolved.ServerURL)
	assert.Equal(t, "secret", resolved.APIKey)

	resolved = loaded.resolve("http://flag:5000", "other")
	assert.Equal(t, "http://flag:5000", resolved.ServerURL)
	assert.Equal(t, "other", resolved.APIKey)
}

func TestCLIConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("server_url = ["), 0o600))

	_, err := loadCLIConfig(path)
	assert.ErrorContains(t, err, "parsing config")
}
