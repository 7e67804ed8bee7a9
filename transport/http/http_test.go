package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitrack/config"
	"habitrack/di"
	"habitrack/helper"
	otelMocks "habitrack/infras/otel/mocks"
	httpTransport "habitrack/transport/http"
)

type apiServer struct {
	t      *testing.T
	server *httptest.Server
	http   *httpTransport.HTTP
	apiKey string
}

func newAPIServer(t *testing.T, configure func(cfg *config.Config)) *apiServer {
	t.Helper()

	db, err := helper.OpenSQLite(filepath.Join(t.TempDir(), "habits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.App.Name = "habitrack-test"
	cfg.Server.Env = "test"

	if configure != nil {
		configure(cfg)
	}

	h := di.InitializeWithConnection(cfg, db, otelMocks.NewOtel())
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return &apiServer{t: t, server: server, http: h, apiKey: cfg.App.APIKey}
}

func (s *apiServer) do(method, path string, body any) (int, map[string]any, []any) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)

		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(s.t, err)
	req.Header.Set("Content-Type", "application/json")

	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	res, err := s.server.Client().Do(req)
	require.NoError(s.t, err)
	defer res.Body.Close()

	var payload any
	require.NoError(s.t, json.NewDecoder(res.Body).Decode(&payload))

	object, _ := payload.(map[string]any)
	list, _ := payload.([]any)

	return res.StatusCode, object, list
}

func TestAPI_HabitLifecycle(t *testing.T) {
	s := newAPIServer(t, nil)

	code, body, _ := s.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Habit Tracker API is running", body["message"])

	code, body, _ = s.do(http.MethodPost, "/api/habits", map[string]string{"name": "Read", "description": "20 pages"})
	require.Equal(t, http.StatusCreated, code)
	habitID := int64(body["id"].(float64))
	assert.Equal(t, "Read", body["name"])
	assert.NotEmpty(t, body["created_at"])

	code, body, _ = s.do(http.MethodPost, "/api/habits", map[string]string{"name": "Read"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Habit with this name already exists", body["error"])

	code, body, _ = s.do(http.MethodPost, "/api/habits", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Habit name is required", body["error"])

	code, _, list := s.do(http.MethodGet, "/api/habits", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, list, 1)

	code, body, _ = s.do(http.MethodGet, "/api/habits/abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Valid habit ID is required", body["error"])

	checkins := fmt.Sprintf("/api/checkins/%d", habitID)

	code, body, _ = s.do(http.MethodPost, checkins, map[string]string{"date": "2024-01-01", "status": "done"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "2024-01-01", body["date"])

	code, body, _ = s.do(http.MethodPost, checkins, map[string]string{"date": "2024-01-01", "status": "missed"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "missed", body["status"])

	code, _, list = s.do(http.MethodGet, checkins, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list, 1)
	assert.Equal(t, "missed", list[0].(map[string]any)["status"])

	code, body, _ = s.do(http.MethodPost, checkins, map[string]string{"date": "2024-01-02", "status": "skipped"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `Status must be either "done" or "missed"`, body["error"])

	code, body, _ = s.do(http.MethodPost, checkins, map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Date is required", body["error"])

	code, body, _ = s.do(http.MethodPost, "/api/checkins/9999", map[string]string{"date": "2024-01-02", "status": "done"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Habit not found", body["error"])

	code, _, list = s.do(http.MethodGet, checkins+"?startDate=2024-01-02", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)

	code, _, _ = s.do(http.MethodGet, checkins+"?startDate=2024-01-05&endDate=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _, list = s.do(http.MethodGet, "/api/checkins", nil)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, list, 1)
	assert.Equal(t, "Read", list[0].(map[string]any)["habit_name"])

	code, body, _ = s.do(http.MethodGet, fmt.Sprintf("/api/summary/habit/%d", habitID), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(habitID), body["habitId"])
	assert.Contains(t, body["weekly"], "completionRate")

	code, body, _ = s.do(http.MethodGet, "/api/summary", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["totalHabits"])
	assert.Contains(t, body["monthly"], "period")

	code, body, _ = s.do(http.MethodDelete, checkins+"/2024-01-01", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Check-in deleted successfully", body["message"])

	code, body, _ = s.do(http.MethodDelete, checkins+"/2024-01-01", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Check-in not found", body["error"])

	_, _, _ = s.do(http.MethodPost, checkins, map[string]string{"date": "2024-01-03", "status": "done"})

	code, body, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/habits/%d", habitID), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Habit deleted successfully", body["message"])

	code, _, list = s.do(http.MethodGet, checkins, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)

	code, _, list = s.do(http.MethodGet, "/api/checkins", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)

	code, body, _ = s.do(http.MethodGet, fmt.Sprintf("/api/habits/%d", habitID), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Habit not found", body["error"])
}

func TestAPI_RoutingErrors(t *testing.T) {
	s := newAPIServer(t, nil)

	code, body, _ := s.do(http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", body["error"])

	code, body, _ = s.do(http.MethodPut, "/api/habits", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Route not found", body["error"])
}

func TestAPI_Health(t *testing.T) {
	s := newAPIServer(t, nil)

	code, _, _ := s.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, code)

	s.http.SetState(httpTransport.ServerStateInGracePeriod)

	code, body, _ := s.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.NotEmpty(t, body["error"])
}

func TestAPI_APIKey(t *testing.T) {
	s := newAPIServer(t, func(cfg *config.Config) {
		cfg.App.APIKey = "secret"
	})

	code, _, _ := s.do(http.MethodGet, "/api/habits", nil)
	assert.Equal(t, http.StatusOK, code)

	s.apiKey = ""

	code, body, _ := s.do(http.MethodGet, "/api/habits", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid or missing API key", body["error"])
}
