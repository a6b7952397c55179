package notifier

import (
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
)

var (
	// ErrClosed 종료된 Notifier에 요청한 경우
	ErrClosed = apperrors.New(apperrors.Unavailable, "Notifier가 종료되어 요청을 처리할 수 없습니다")

	// ErrQueueFull 대기열이 가득 찬 상태가 enqueueTimeout 동안 해소되지 않은 경우
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "알림 발송 대기열이 가득 찼습니다")

	// ErrEmptyMessage 빈 메시지
	ErrEmptyMessage = apperrors.New(apperrors.InvalidInput, "알림 메시지가 비어 있습니다")

	// ErrPanicRecovered 대기열 등록 중 복구된 panic
	ErrPanicRecovered = apperrors.New(apperrors.Internal, "알림 요청 처리 중 panic이 발생했습니다")
)
