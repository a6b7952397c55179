package notifier

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
)

// Base 알림 요청 대기열을 관리하는 공통 구현입니다.
//
// 구현체는 Base를 임베딩하여 대기열 관리를 위임하고, RequestC에서 꺼낸 요청을
// 실제 채널로 전송하는 워커(Run)만 구현합니다.
type Base struct {
	id string

	// enqueueTimeout 대기열이 가득 찼을 때 요청을 버리기 전까지 기다리는 최대 시간
	enqueueTimeout time.Duration

	requestC chan Request

	mu     sync.RWMutex
	closed bool

	// closeC Close가 호출되면 닫힙니다. 대기 중인 Send를 깨우는 데 사용합니다.
	closeC chan struct{}

	// done 워커가 완전히 종료되면 닫힙니다.
	done     chan struct{}
	doneOnce sync.Once

	// pendingSendsWG 대기열 등록을 시도 중인 호출자 수.
	// 워커는 Close 후 이 값이 0이 될 때까지 기다린 뒤 대기열을 비웁니다.
	pendingSendsWG sync.WaitGroup
}

// NewBase Base를 생성합니다.
func NewBase(id string, bufferSize int, enqueueTimeout time.Duration) *Base {
	return &Base{
		id:             id,
		enqueueTimeout: enqueueTimeout,
		requestC:       make(chan Request, bufferSize),
		closeC:         make(chan struct{}),
		done:           make(chan struct{}),
	}
}

// ID Notifier의 식별자를 반환합니다.
func (b *Base) ID() string {
	return b.id
}

// Notify 요청을 대기열에 등록하고 성공 여부를 반환합니다.
func (b *Base) Notify(message string, errorOccurred bool) bool {
	return b.Send(context.Background(), Request{Message: message, ErrorOccurred: errorOccurred}) == nil
}

// Send 요청을 대기열에 등록합니다.
// 대기열이 가득 차면 enqueueTimeout 동안 기다린 뒤 ErrQueueFull을 반환합니다.
func (b *Base) Send(ctx context.Context, req Request) (err error) {
	if strings.TrimSpace(req.Message) == "" {
		return ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrClosed
	}
	b.pendingSendsWG.Add(1)
	requestC, closeC, enqueueTimeout := b.requestC, b.closeC, b.enqueueTimeout
	b.mu.RUnlock()

	defer func() {
		b.pendingSendsWG.Done()

		if r := recover(); r != nil {
			applog.WithComponentAndFields(constants.ComponentNotifier, applog.Fields{
				"notifier_id": b.id,
				"panic":       r,
			}).Error(constants.LogMsgNotifierPanicRecovered)
			err = ErrPanicRecovered
		}
	}()

	timer := time.NewTimer(enqueueTimeout)
	defer timer.Stop()

	select {
	case requestC <- req:
		return nil

	case <-closeC:
		return ErrClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		applog.WithComponentAndFields(constants.ComponentNotifier, applog.Fields{
			"notifier_id":    b.id,
			"error_occurred": req.ErrorOccurred,
		}).Warn(constants.LogMsgNotifierQueueFull)
		return ErrQueueFull
	}
}

// Close 새 요청을 더 이상 받지 않습니다. 여러 번 호출해도 안전합니다.
//
// requestC는 닫지 않습니다. 다중 생산자 환경에서 닫힌 채널에 전송하는 panic을 피하기 위해서이며,
// 워커는 WaitForPendingSends 후 남은 요청을 비웁니다.
func (b *Base) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.closeC)
	}
}

// MarkDone 워커 종료를 알립니다. 워커의 마지막 단계에서 호출합니다.
func (b *Base) MarkDone() {
	b.doneOnce.Do(func() { close(b.done) })
}

// Done 워커가 종료되면 닫히는 채널을 반환합니다.
func (b *Base) Done() <-chan struct{} {
	return b.done
}

// WaitForPendingSends 진행 중인 Send 호출이 모두 끝날 때까지 기다립니다.
func (b *Base) WaitForPendingSends() {
	b.pendingSendsWG.Wait()
}

// RequestC 워커가 요청을 꺼내는 읽기 전용 채널을 반환합니다.
func (b *Base) RequestC() <-chan Request {
	return b.requestC
}
