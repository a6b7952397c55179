package telegram

import (
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// fakeClient 전송된 메시지를 기록하고, 준비된 에러를 순서대로 반환합니다.
type fakeClient struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	errs []error

	// sentC 전송 시도마다 신호를 보냅니다. nil이면 무시합니다.
	sentC chan struct{}
}

func (f *fakeClient) GetSelf() tgbotapi.User {
	return tgbotapi.User{UserName: "crafter_bot"}
}

func (f *fakeClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	msg := c.(tgbotapi.MessageConfig)
	f.sent = append(f.sent, msg)

	if f.sentC != nil {
		select {
		case f.sentC <- struct{}{}:
		default:
		}
	}

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return tgbotapi.Message{}, err
		}
	}

	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeClient) messages() []tgbotapi.MessageConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), f.sent...)
}

// newTestNotifier 대기 시간이 없는 테스트용 Notifier를 생성합니다.
func newTestNotifier(c client) *telegramNotifier {
	n := newNotifierWithClient(c, 12345)
	n.limiter = nil
	n.retryDelay = time.Millisecond
	n.sendTimeout = time.Second
	n.shutdownTimeout = time.Second
	return n
}

func apiError(code, retryAfter int) error {
	return &tgbotapi.Error{
		Code:               code,
		Message:            "test",
		ResponseParameters: tgbotapi.ResponseParameters{RetryAfter: retryAfter},
	}
}
