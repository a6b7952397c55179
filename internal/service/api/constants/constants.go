// Package constants 테넌트 API 서비스 전반에서 공유하는 상수를 정의합니다.
package constants

import "time"

// 로깅 컴포넌트 이름
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 기본값
const (
	DefaultMaxBodySize = "64K"

	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 라이선스 검증과 백엔드 조회가 순차로 수행되는 시간을 포함해야 합니다.
	DefaultRequestTimeout = 20 * time.Second

	ShutdownTimeout = 5 * time.Second
)

// 응답 헤더 및 콘텐츠 타입
const (
	HeaderRetryAfter        = "Retry-After"
	HeaderCacheControl      = "Cache-Control"
	MIMEApplicationManifest = "application/manifest+json"
)

// 헬스체크 상태 및 의존성 이름
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyLicenseServer       = "license_server"
	DependencyBackend             = "backend"
	DependencyNotificationService = "notification_service"
)

// 에러 메시지
const (
	ErrMsgInternalServer    = "내부 서버 오류가 발생했습니다"
	ErrMsgNotFound          = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgTooManyRequests   = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgWebsiteUnresolved = "웹사이트 정보를 불러오지 못했습니다"
)

// 의존성 상태 메시지
const (
	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusNotInitialized = "초기화되지 않음"
)

// 로그 메시지
const (
	LogMsgServiceStarting              = "API 서비스 시작 진입: HTTP 서버 초기화 프로세스를 시작합니다"
	LogMsgServiceStarted               = "API 서비스 시작 완료: HTTP 서버가 요청을 수신할 준비가 되었습니다"
	LogMsgServiceAlreadyStarted        = "API 서비스가 이미 실행 중입니다"
	LogMsgServiceStopping              = "API 서비스 종료 요청을 수신했습니다"
	LogMsgServiceStopped               = "API 서비스가 종료되었습니다"
	LogMsgServiceUnexpectedExit        = "HTTP 서버가 종료 신호 없이 중단되었습니다"
	LogMsgServiceHTTPServerStarting    = "HTTP 서버를 시작합니다"
	LogMsgServiceHTTPServerStopped     = "HTTP 서버가 정상적으로 종료되었습니다"
	LogMsgServiceHTTPServerFatalError  = "HTTP 서버 구동 중 치명적인 오류가 발생했습니다"
	LogMsgServiceHTTPServerShutdownErr = "HTTP 서버 종료 중 오류가 발생했습니다"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"

	LogMsgHealthCheck       = "헬스체크 요청"
	LogMsgVersionInfo       = "버전 정보 요청"
	LogMsgWebsiteUnresolved = "웹사이트 해석 실패"
	LogMsgArtifactDegraded  = "기본 설정으로 대체하여 응답합니다"
)

// Panic 메시지
const (
	PanicMsgAppConfigRequired          = "api: AppConfig는 필수입니다"
	PanicMsgNotificationSenderRequired = "api: NotificationSender는 필수입니다"
	PanicMsgWebsiteSourceRequired      = "api: WebsiteSource는 필수입니다"
)
