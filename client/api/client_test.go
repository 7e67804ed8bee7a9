package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitrack/client/api"
	"habitrack/config"
	"habitrack/di"
	"habitrack/helper"
	otelMocks "habitrack/infras/otel/mocks"
	"habitrack/shared/date"
)

func newClient(t *testing.T, apiKey string) *api.Client {
	t.Helper()

	db, err := helper.OpenSQLite(filepath.Join(t.TempDir(), "habits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.App.APIKey = apiKey

	server := httptest.NewServer(di.InitializeWithConnection(cfg, db, otelMocks.NewOtel()))
	t.Cleanup(server.Close)

	return api.New(server.URL+"/", api.WithAPIKey(apiKey), api.WithHTTPClient(server.Client()))
}

func TestClient_RoundTrip(t *testing.T) {
	client := newClient(t, "")
	ctx := context.Background()
	day := date.New(2024, 1, 1)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)

	habit, err := client.CreateHabit(ctx, "  Read  ", "20 pages")
	require.NoError(t, err)
	assert.Equal(t, "Read", habit.Name)

	_, err = client.CreateHabit(ctx, "Read", "")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Habit with this name already exists", apiErr.Error())

	checkin, err := client.UpsertCheckin(ctx, habit.ID, day, "done")
	require.NoError(t, err)
	assert.Equal(t, day, checkin.Date)

	checkins, err := client.ListCheckins(ctx, habit.ID, day, day)
	require.NoError(t, err)
	require.Len(t, checkins, 1)
	assert.Equal(t, "done", checkins[0].Status)

	all, err := client.ListAllCheckins(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Read", all[0].HabitName)

	summary, err := client.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalHabits)

	habitSummary, err := client.HabitSummary(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, habit.ID, habitSummary.HabitID)

	require.NoError(t, client.DeleteCheckin(ctx, habit.ID, day))
	assert.True(t, api.IsNotFound(client.DeleteCheckin(ctx, habit.ID, day)))

	require.NoError(t, client.DeleteHabit(ctx, habit.ID))

	_, err = client.GetHabit(ctx, habit.ID)
	assert.True(t, api.IsNotFound(err))

	habits, err := client.ListHabits(ctx)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestClient_APIKey(t *testing.T) {
	client := newClient(t, "secret")

	_, err := client.ListHabits(context.Background())
	require.NoError(t, err)

	anonymous := api.New(client.BaseURL())

	_, err = anonymous.ListHabits(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := api.New(server.URL).ListHabits(context.Background())

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "api: unexpected status 502", apiErr.Error())
}

func TestNew_DefaultURL(t *testing.T) {
	assert.Equal(t, api.DefaultServerURL, api.New("  ").BaseURL())
}
