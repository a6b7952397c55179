// Package notifier 운영자 알림 채널의 공통 인터페이스와 요청 대기열을 제공합니다.
package notifier

import "context"

// Notifier 운영자에게 메시지를 전달하는 알림 채널입니다.
type Notifier interface {
	// ID Notifier 인스턴스의 식별자를 반환합니다.
	ID() string

	// Run 대기열의 요청을 꺼내 실제로 전송하는 워커를 실행합니다.
	// ctx가 취소될 때까지 블로킹되며, 종료 전에 남은 요청을 처리합니다.
	Run(ctx context.Context)

	// Notify 알림 요청을 대기열에 등록하고 즉시 반환합니다.
	// 대기열이 가득 찼거나 이미 종료된 경우 false를 반환합니다.
	Notify(message string, errorOccurred bool) bool

	// Done Run이 완전히 종료되면 닫히는 채널을 반환합니다.
	Done() <-chan struct{}
}

// Request 대기열을 통해 워커에게 전달되는 알림 요청입니다.
type Request struct {
	Message       string
	ErrorOccurred bool
}
