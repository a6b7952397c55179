package telegram

import (
	"context"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
)

// Run 대기열의 알림 요청을 순서대로 텔레그램에 전송합니다.
//
// ctx가 취소되면 새 요청을 거부하고, 이미 대기열에 들어온 요청은 shutdownTimeout 안에서 모두 전송한 뒤 종료합니다.
func (n *telegramNotifier) Run(ctx context.Context) {
	defer n.MarkDone()

	applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
		"notifier_id":  n.ID(),
		"bot_username": n.client.GetSelf().UserName,
		"chat_id":      n.chatID,
	}).Debug(constants.LogMsgTelegramStarted)

	for {
		select {
		case req := <-n.RequestC():
			// 전송 중에 ctx가 취소되어도 이미 꺼낸 요청은 끝까지 보낸다.
			n.handleRequest(context.Background(), req)

		case <-ctx.Done():
			n.drain()
			return
		}
	}
}

// drain 종료 시 대기열에 남은 요청을 처리합니다.
func (n *telegramNotifier) drain() {
	n.Close()
	n.WaitForPendingSends()

	applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
		"notifier_id": n.ID(),
		"pending":     len(n.RequestC()),
	}).Info(constants.LogMsgTelegramDraining)

	// 서비스 context는 이미 취소되었으므로 독립된 context로 전송한다.
	ctx, cancel := context.WithTimeout(context.Background(), n.shutdownTimeout)
	defer cancel()

	for {
		select {
		case req := <-n.RequestC():
			n.handleRequest(ctx, req)

		case <-ctx.Done():
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"dropped":     len(n.RequestC()),
			}).Warn(constants.LogMsgTelegramDrainTimeout)
			return

		default:
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
			}).Info(constants.LogMsgTelegramStopped)
			return
		}
	}
}

// handleRequest 요청 하나를 sendTimeout 안에서 전송합니다.
func (n *telegramNotifier) handleRequest(parent context.Context, req notifier.Request) {
	sendCtx, cancel := context.WithTimeout(parent, n.sendTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"panic":       r,
			}).Error(constants.LogMsgNotifierPanicRecovered)
		}
	}()

	n.sendMessage(sendCtx, formatMessage(req))
}
