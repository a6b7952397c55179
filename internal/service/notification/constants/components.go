// Package constants 알림 서비스와 Notifier 구현체가 공유하는 상수를 정의합니다.
package constants

// 로깅 컴포넌트 이름
const (
	ComponentService          = "notification.service"
	ComponentNotifier         = "notification.notifier"
	ComponentNotifierTelegram = "notification.notifier.telegram"
)

// Notifier 식별자
const (
	NotifierIDTelegram = "telegram"
	NotifierIDNoop     = "noop"
)
