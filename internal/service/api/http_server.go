package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/crafter-tenant-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정입니다.
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins CORS 허용 Origin 목록
	AllowOrigins []string

	// RequestTimeout 요청 하나의 최대 처리 시간. 0이면 DefaultRequestTimeout을 사용합니다.
	RequestTimeout time.Duration

	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어가 구성된 Echo 인스턴스를 생성합니다. 라우트는 포함되지 않습니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery: 이후 미들웨어와 핸들러의 panic을 복구
//  2. RequestID: X-Request-ID 부여 (로그 추적용)
//  3. Server 헤더 제거
//  4. HTTPLogger: 429/503 응답도 기록되도록 요청 제한보다 앞에 둔다
//  5. RateLimit: IP별 토큰 버킷
//  6. BodyLimit
//  7. Timeout: 라이선스 검증과 백엔드 조회를 합친 시간 상한
//  8. CORS: 프런트엔드가 다른 도메인에서 호출
//  9. Secure: 보안 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewLogger(applog.StandardLogger())
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	if cfg.RateLimitPerSecond > 0 && cfg.RateLimitBurst > 0 {
		e.Use(appmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	}
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Secure())

	return e
}
