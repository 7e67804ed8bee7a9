package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"habitrack/config"
	otelMocks "habitrack/infras/otel/mocks"
	"habitrack/shared/cache"
	cacheMocks "habitrack/shared/cache/mocks"
	"habitrack/shared/constant"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func newMiddleware(cfg *config.Config, c cache.RedisCache) AppMiddleware {
	return NewAppMiddleware(otelMocks.NewOtel(), cfg, c)
}

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	return rec
}

func TestRequestID(t *testing.T) {
	mw := newMiddleware(&config.Config{}, nil)

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "abc")

	rec = serve(handler, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestRecoverer(t *testing.T) {
	mw := newMiddleware(&config.Config{}, nil)

	handler := mw.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!"}`, rec.Body.String())

	aborting := mw.Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serve(aborting, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestAPIKey(t *testing.T) {
	open := newMiddleware(&config.Config{}, nil)
	assert.Equal(t, http.StatusNoContent, serve(open.APIKey(ok), httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	cfg := &config.Config{}
	cfg.App.APIKey = "secret"
	guarded := newMiddleware(cfg, nil).APIKey(ok)

	rec := serve(guarded, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or missing API key"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "secret")
	assert.Equal(t, http.StatusNoContent, serve(guarded, req).Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := serve(newMiddleware(cfg, nil).CORS()(ok), req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	cfg.App.CORS.Enable = false
	rec = serve(newMiddleware(cfg, nil).CORS()(ok), req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func rateLimitConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func storedCount(count int) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*int) = count

		return nil
	}
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:10.0.0.1:test-agent"

	newRequest := func() *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 192.168.0.1")
		req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

		return req
	}

	t.Run("first request starts the window", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(cache.Nil)
		c.EXPECT().Save(gomock.Any(), key, 1, 60).Return(nil)

		rec := serve(newMiddleware(rateLimitConfig(), c).RateLimit()(ok), newRequest())
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).DoAndReturn(storedCount(2))

		rec := serve(newMiddleware(rateLimitConfig(), c).RateLimit()(ok), newRequest())
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("fails open", func(t *testing.T) {
		c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
		c.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(errors.New("connection refused"))

		rec := serve(newMiddleware(rateLimitConfig(), c).RateLimit()(ok), newRequest())
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		rec := serve(newMiddleware(&config.Config{}, nil).RateLimit()(ok), newRequest())
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", getClientIP(req))

	req.Header.Set(constant.RequestHeaderRealIP, " 198.51.100.2 ")
	assert.Equal(t, "198.51.100.2", getClientIP(req))

	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.9")
	assert.Equal(t, "203.0.113.9", getClientIP(req))
}

func TestTracingRecordsRoute(t *testing.T) {
	recorder := otelMocks.NewRecorder()
	mw := NewAppMiddleware(recorder, &config.Config{}, nil)

	rec := serve(mw.Tracing(ok), httptest.NewRequest(http.MethodDelete, "/api/habits/1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, recorder.Spans(), "DELETE /api/habits/1")
}
