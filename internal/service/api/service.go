package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/crafter-tenant-server/docs"
	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/mark"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/version"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/cachepolicy"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/system"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/handler/tenant"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/contract"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 테넌트 API 서버의 생명주기를 관리합니다.
//
// Start로 시작하며 별도의 고루틴에서 HTTP(S) 서버를 구동합니다.
// 전달된 context가 취소되면 Graceful Shutdown을 수행한 뒤 WaitGroup을 해제합니다.
type Service struct {
	appConfig *config.AppConfig

	source tenant.WebsiteSource

	notificationSender contract.NotificationSender

	checkers []system.DependencyChecker

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, source tenant.WebsiteSource, notificationSender contract.NotificationSender, buildInfo version.Info, checkers ...system.DependencyChecker) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if source == nil {
		panic(constants.PanicMsgWebsiteSourceRequired)
	}
	if notificationSender == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}

	return &Service{
		appConfig:          appConfig,
		source:             source,
		notificationSender: notificationSender,
		checkers:           checkers,
		buildInfo:          buildInfo,
	}
}

// NewDependencyCheckers /health가 확인할 의존성 목록을 구성합니다.
// f는 상태 코드 검사가 없는 Fetcher여야 하며, health가 nil이면 알림 서비스는 제외됩니다.
func NewDependencyCheckers(appConfig *config.AppConfig, f fetcher.Fetcher, health contract.NotificationHealthChecker) []system.DependencyChecker {
	checkers := []system.DependencyChecker{
		system.NewReachabilityChecker(constants.DependencyLicenseServer, appConfig.License.ServerURL, f),
		system.NewReachabilityChecker(constants.DependencyBackend, appConfig.Backend.BaseURL, f),
	}

	if health != nil {
		checkers = append(checkers, system.NewCheckerFunc(constants.DependencyNotificationService, func(context.Context) error {
			return health.Health()
		}))
	}

	return checkers
}

// Start API 서비스를 시작합니다. 즉시 반환하며, 서버가 완전히 종료되면 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러를 생성하고 미들웨어와 라우트가 구성된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(s.buildInfo, s.checkers...)
	tenantHandler := tenant.NewHandler(s.source, s.appConfig.Backend.AssetBase(), cachepolicy.EnvFromDebug(s.appConfig.Debug))

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.TenantAPI.CORS.AllowOrigins,
		RateLimitPerSecond: s.appConfig.TenantAPI.RateLimit.RequestsPerSecond,
		RateLimitBurst:     s.appConfig.TenantAPI.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler, tenantHandler)

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹하며, 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.TenantAPI.WS
	address := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(address, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 사유를 기록합니다. Graceful Shutdown이 아닌 종료는 운영자에게 알립니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	message := constants.LogMsgServiceHTTPServerFatalError
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.TenantAPI.WS.ListenPort,
		"error": err,
	}).Error(message)

	_ = s.notificationSender.NotifyDefaultWithError(fmt.Sprintf("%s%s\r\n\r\n%s", message, mark.Alert.WithSpace(), err))
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownErr)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
