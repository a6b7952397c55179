package constants

// 서비스 로그 메시지
const (
	LogMsgServiceStarting       = "Notification 서비스 시작중..."
	LogMsgServiceStarted        = "Notification 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "Notification 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "Notification 서비스 중지중..."
	LogMsgServiceStopped        = "Notification 서비스 중지됨"
	LogMsgServiceNotRunning     = "Notification 서비스가 실행 중이 아니어서 메시지를 전송할 수 없습니다"
	LogMsgNotifyRejected        = "알림 요청이 Notifier 대기열에 등록되지 않았습니다"
)

// Notifier 로그 메시지
const (
	LogMsgNotifierPanicRecovered = "Notifier 패닉 복구: 알림 전송 중 예기치 않은 오류가 발생했습니다 (서비스 유지됨)"
	LogMsgNotifierQueueFull      = "알림 요청 거부: 발송 대기열 용량 초과 (Queue Full)"
	LogMsgNoopNotify             = "알림 채널이 비활성화되어 메시지를 로그로만 기록합니다"
)

// 텔레그램 로그 메시지
const (
	LogMsgTelegramInitClient     = "텔레그램 봇 API 클라이언트를 초기화합니다"
	LogMsgTelegramStarted        = "텔레그램 Notifier 시작됨"
	LogMsgTelegramDraining       = "텔레그램 Notifier 종료: 대기열에 남은 메시지를 처리합니다"
	LogMsgTelegramDrainTimeout   = "텔레그램 Notifier 종료 대기 시간 초과: 남은 메시지는 버려집니다"
	LogMsgTelegramStopped        = "텔레그램 Notifier 중지됨"
	LogMsgTelegramSendSuccess    = "텔레그램 메시지 전송 성공"
	LogMsgTelegramSendFail       = "텔레그램 메시지 전송 실패"
	LogMsgTelegramSendFinalFail  = "텔레그램 메시지 전송 최종 실패: 재시도 횟수를 모두 소진했습니다"
	LogMsgTelegramHTMLFallback   = "HTML 파싱 오류로 일반 텍스트로 재전송합니다"
	LogMsgTelegramCriticalError  = "재시도할 수 없는 텔레그램 API 오류입니다"
	LogMsgTelegramRateLimitWait  = "텔레그램 API Rate Limit 초과: Retry-After 만큼 대기합니다"
	LogMsgTelegramRateLimitAbort = "Rate Limiter 대기 중 전송이 취소되었습니다"
)
