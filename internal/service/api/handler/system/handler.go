// Package system 헬스체크, 버전 정보 등 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/version"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// checkTimeout 의존성 하나를 확인하는 데 허용되는 최대 시간
const checkTimeout = 3 * time.Second

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	checkers []DependencyChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info, checkers ...DependencyChecker) *Handler {
	return &Handler{
		checkers:        checkers,
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성(라이선스 서버, 백엔드, 알림 서비스)의 상태를 확인합니다.
// @Description 하나라도 응답하지 않으면 status는 unhealthy입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := h.checkDependencies(c.Request().Context())

	status := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			status = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

// checkDependencies 모든 의존성을 동시에 확인합니다.
func (h *Handler) checkDependencies(ctx context.Context) map[string]system.DependencyStatus {
	deps := make(map[string]system.DependencyStatus, len(h.checkers))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, checker := range h.checkers {
		wg.Add(1)
		go func(checker DependencyChecker) {
			defer wg.Done()

			status := check(ctx, checker)

			mu.Lock()
			deps[checker.Name()] = status
			mu.Unlock()
		}(checker)
	}
	wg.Wait()

	return deps
}

func check(ctx context.Context, checker DependencyChecker) system.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Check(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency,
			Message:   err.Error(),
		}
	}

	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency,
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
