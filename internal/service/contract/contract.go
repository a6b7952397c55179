// Package contract 서비스 간에 공유하는 인터페이스를 정의합니다.
// 구현 패키지끼리 서로 import하지 않도록 이 패키지를 경유합니다.
package contract

import (
	"context"
	"sync"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
)

// ErrMessageRequired 알림 메시지가 비어 있거나 공백뿐일 때 반환하는 에러입니다.
var ErrMessageRequired = apperrors.New(apperrors.InvalidInput, "알림 메시지 본문은 비워둘 수 없습니다")

// Service 백그라운드에서 실행되는 서비스의 생명주기 인터페이스입니다.
//
// Start는 즉시 반환하며, 서비스가 완전히 종료되면 wg.Done()을 호출합니다.
// ctx가 취소되면 종료 절차를 시작합니다.
type Service interface {
	Start(ctx context.Context, wg *sync.WaitGroup) error
}

// NotificationSender 운영자 알림 발송 인터페이스입니다.
//
// 반환되는 에러는 발송 요청이 큐에 등록되었는지만 나타내며, 실제 전송 결과와는 무관합니다.
type NotificationSender interface {
	NotifyDefault(message string) error

	// NotifyDefaultWithError 장애 등 즉시 확인이 필요한 상황을 알립니다.
	NotifyDefaultWithError(message string) error
}

// NotificationHealthChecker 알림 서비스의 상태를 확인합니다.
type NotificationHealthChecker interface {
	Health() error
}
