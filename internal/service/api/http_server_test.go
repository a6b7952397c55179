package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer_Configuration(t *testing.T) {
	for _, debug := range []bool{true, false} {
		e := NewHTTPServer(HTTPServerConfig{Debug: debug, AllowOrigins: []string{"*"}})

		require.NotNil(t, e)
		assert.Equal(t, debug, e.Debug)
		assert.True(t, e.HideBanner)
		assert.NotNil(t, e.Logger)
		assert.Equal(t, 5*time.Second, e.Server.ReadHeaderTimeout)
	}
}

func TestNewHTTPServer_CORS(t *testing.T) {
	tests := []struct {
		name              string
		allowOrigins      []string
		origin            string
		method            string
		expectStatus      int
		expectAllowOrigin string
	}{
		{"와일드카드 Preflight", []string{"*"}, "https://play.example.com", http.MethodOptions, http.StatusNoContent, "*"},
		{"허용된 Origin", []string{"https://play.example.com"}, "https://play.example.com", http.MethodGet, http.StatusOK, "https://play.example.com"},
		{"허용되지 않은 Origin", []string{"https://play.example.com"}, "https://evil.example.com", http.MethodGet, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = captureLogs(t)

			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})
			e.GET("/app-config", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.method, "/app-config", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	buf := captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("intentional panic")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"result_code":500,"message":"내부 서버 오류가 발생했습니다"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "intentional panic")
}

func TestNewHTTPServer_RequestContextHasDeadline(t *testing.T) {
	_ = captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 2 * time.Second})

	var deadline time.Time
	var ok bool
	e.GET("/website", func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/website", nil))

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
}

func TestNewHTTPServer_RateLimit(t *testing.T) {
	_ = captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RateLimitPerSecond: 0.001, RateLimitBurst: 1})
	e.GET("/manifest", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/manifest", nil))
	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/manifest", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewHTTPServer_StandardHeaders(t *testing.T) {
	_ = captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Empty(t, rec.Header().Get(echo.HeaderServer))
}
