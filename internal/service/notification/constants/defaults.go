package constants

import "time"

const (
	// DefaultRetryDelay 알림 발송 실패 시 재시도 대기 시간의 기본값입니다.
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetries 단일 메시지 전송의 최대 시도 횟수입니다.
	DefaultMaxRetries = 3

	// DefaultRateLimit 텔레그램 API Rate Limit 기본값 (초당 허용 요청 수)
	// 공식 문서는 채팅방당 초당 1회를 권장합니다.
	DefaultRateLimit = 1

	// DefaultRateBurst 순간 최대 허용 요청 수
	DefaultRateBurst = 5

	// DefaultHTTPClientTimeout 텔레그램 API 클라이언트의 HTTP 요청 타임아웃
	DefaultHTTPClientTimeout = 15 * time.Second

	// DefaultEnqueueTimeout 대기열이 가득 찼을 때 요청을 버리기 전까지 기다리는 최대 시간
	DefaultEnqueueTimeout = 3 * time.Second

	// TelegramNotifierBufferSize 텔레그램 Notifier의 내부 버퍼 크기
	// 라이선스 상태 변화와 서버 장애만 전달하므로 크게 잡을 필요가 없습니다.
	TelegramNotifierBufferSize = 30

	// TelegramShutdownTimeout 종료 시 잔여 메시지 처리를 위해 대기하는 최대 시간입니다.
	// TelegramNotifierBufferSize / DefaultRateLimit 보다 커야 합니다.
	TelegramShutdownTimeout = 60 * time.Second

	// TelegramSendTimeout 메시지 한 건(분할 전송 포함)을 전송하는 데 허용하는 시간입니다.
	TelegramSendTimeout = 30 * time.Second
)
