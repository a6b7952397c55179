package notifier

import (
	"context"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
)

// noopNotifier 알림 채널이 설정되지 않았을 때 사용하는 Notifier입니다.
// 메시지를 전송하지 않고 로그로만 남깁니다.
type noopNotifier struct {
	*Base
}

var _ Notifier = (*noopNotifier)(nil)

// NewNoop 메시지를 로그로만 기록하는 Notifier를 생성합니다.
func NewNoop() Notifier {
	return &noopNotifier{Base: NewBase(constants.NotifierIDNoop, 1, 0)}
}

// Notify 메시지를 로그로 기록하고 항상 true를 반환합니다.
func (n *noopNotifier) Notify(message string, errorOccurred bool) bool {
	entry := applog.WithComponentAndFields(constants.ComponentNotifier, applog.Fields{
		"notifier_id": n.ID(),
		"message":     message,
	})
	if errorOccurred {
		entry.Warn(constants.LogMsgNoopNotify)
	} else {
		entry.Info(constants.LogMsgNoopNotify)
	}
	return true
}

func (n *noopNotifier) Run(ctx context.Context) {
	defer n.MarkDone()

	<-ctx.Done()
	n.Close()
}
