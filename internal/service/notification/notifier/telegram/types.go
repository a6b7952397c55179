// Package telegram 텔레그램 봇으로 운영자 알림을 전송하는 Notifier를 제공합니다.
package telegram

import (
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// messageMaxLength 텔레그램 메시지 한 건의 최대 바이트 길이입니다.
// 공식 제한은 4096자이지만 HTML 태그 오버헤드를 고려하여 여유를 둡니다.
const messageMaxLength = 3900

// 메시지 서식
const (
	msgErrorSuffix = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// client 텔레그램 봇 API 호출을 추상화한 인터페이스입니다.
type client interface {
	GetSelf() tgbotapi.User
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// tgClient tgbotapi.BotAPI를 client 인터페이스에 맞춥니다.
type tgClient struct {
	*tgbotapi.BotAPI
}

func (c *tgClient) GetSelf() tgbotapi.User {
	return c.Self
}

// telegramNotifier 텔레그램 채팅방으로 알림을 전송하는 Notifier입니다.
type telegramNotifier struct {
	*notifier.Base

	chatID int64

	client client

	// retryDelay Retry-After가 없는 실패 후 재시도 전 대기 시간
	retryDelay time.Duration
	maxRetries int

	// limiter 채팅방당 전송 속도 제한
	limiter *rate.Limiter

	sendTimeout     time.Duration
	shutdownTimeout time.Duration
}

var _ notifier.Notifier = (*telegramNotifier)(nil)
