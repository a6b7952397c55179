package notification

import (
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
)

var (
	// ErrServiceNotRunning 서비스가 시작되지 않았거나 이미 중지된 경우
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "Notification 서비스가 실행 중이 아닙니다")

	// ErrNotifyRejected Notifier가 요청을 대기열에 등록하지 못한 경우
	ErrNotifyRejected = apperrors.New(apperrors.Unavailable, "알림 요청이 거부되었습니다")

	// ErrNotifierStopped Notifier 워커가 먼저 종료된 경우
	ErrNotifierStopped = apperrors.New(apperrors.Unavailable, "Notifier가 중지되었습니다")
)
