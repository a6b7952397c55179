package api

import (
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/system"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/tenant"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 테넌트 API의 모든 라우트를 등록합니다.
//
//   - 테넌트: /website, /app-config, /manifest (/manifest.json 별칭)
//   - 시스템: /health, /version
//   - 운영: /metrics (Prometheus), /swagger/*
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, tenantHandler *tenant.Handler) {
	registerTenantRoutes(e, tenantHandler)
	registerSystemRoutes(e, systemHandler)
	registerMetricsRoutes(e)
	registerSwaggerRoutes(e)
}

func registerTenantRoutes(e *echo.Echo, h *tenant.Handler) {
	e.GET("/website", h.WebsiteHandler)
	e.GET("/app-config", h.AppConfigHandler)
	e.GET("/manifest", h.ManifestHandler)
	e.GET("/manifest.json", h.ManifestHandler)
}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

func registerMetricsRoutes(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
