package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/version"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/cachepolicy"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/system"
	tenanthandler "github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/tenant"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	res tenant.Resolution
	err error
}

func (s stubSource) Resolve(context.Context) (tenant.Resolution, error) {
	return s.res, s.err
}

func fallbackSource() stubSource {
	return stubSource{res: tenant.Resolution{
		Website:   &tenant.Website{ID: "demo", Name: "Demo Network", Image: "/logo.png"},
		IsExpired: true,
	}}
}

func newRoutedEcho(t *testing.T, source tenanthandler.WebsiteSource) *echo.Echo {
	t.Helper()
	_ = captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	RegisterRoutes(e,
		system.NewHandler(version.Info{Version: "1.0.0"}),
		tenanthandler.NewHandler(source, "https://cdn.example.com", cachepolicy.EnvProduction),
	)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRegisterRoutes_AllRoutes(t *testing.T) {
	e := newRoutedEcho(t, fallbackSource())

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, path := range []string{"/website", "/app-config", "/manifest", "/manifest.json", "/health", "/version", "/metrics", "/swagger/*"} {
		assert.True(t, registered[http.MethodGet+" "+path], "%s 라우트가 등록되어야 합니다", path)
	}
}

func TestRegisterRoutes_TenantEndpoints(t *testing.T) {
	e := newRoutedEcho(t, fallbackSource())

	website := get(e, "/website")
	assert.Equal(t, http.StatusOK, website.Code)
	assert.Contains(t, website.Body.String(), `"isExpired":true`)

	appConfig := get(e, "/app-config")
	assert.Equal(t, http.StatusOK, appConfig.Code)
	assert.Contains(t, appConfig.Body.String(), `"appName":"Demo Network"`)

	for _, path := range []string{"/manifest", "/manifest.json"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/manifest+json", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"), "대체 웹사이트는 짧게 캐시해야 합니다")
	}

	licensed := fallbackSource()
	licensed.res.IsExpired = false
	e = newRoutedEcho(t, licensed)
	for _, path := range []string{"/manifest", "/manifest.json"} {
		assert.Equal(t, "public, max-age=3600, stale-while-revalidate=86400", get(e, path).Header().Get("Cache-Control"))
	}
}

func TestRegisterRoutes_Metrics(t *testing.T) {
	e := newRoutedEcho(t, fallbackSource())

	require.Equal(t, http.StatusOK, get(e, "/app-config").Code)

	rec := get(e, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crafter_artifact_derivations_total{artifact="app_config",source="derived"}`)
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	e := newRoutedEcho(t, fallbackSource())

	index := get(e, "/swagger/index.html")
	assert.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Header().Get(echo.HeaderContentType), "text/html")

	doc := get(e, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, doc.Code)
	assert.Contains(t, doc.Body.String(), "/app-config")
}

func TestRegisterRoutes_UnknownPath(t *testing.T) {
	e := newRoutedEcho(t, fallbackSource())

	rec := get(e, "/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"result_code":404,"message":"요청한 리소스를 찾을 수 없습니다"}`, rec.Body.String())
}
