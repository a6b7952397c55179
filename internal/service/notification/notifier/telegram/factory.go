package telegram

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// New 텔레그램 봇 API 클라이언트를 초기화하여 Notifier를 생성합니다.
// 봇 토큰 확인을 위해 텔레그램 API(getMe)를 한 번 호출합니다.
func New(cfg config.TelegramConfig, debug bool) (notifier.Notifier, error) {
	applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
		"bot_token": applog.MaskSensitiveData(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug(constants.LogMsgTelegramInitClient)

	// 기본 http.Client는 타임아웃이 없으므로 반드시 지정한다.
	httpClient := &http.Client{Timeout: constants.DefaultHTTPClientTimeout}

	botAPI, err := tgbotapi.NewBotAPIWithClient(strings.TrimSpace(cfg.BotToken), tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	botAPI.Debug = debug

	return newNotifierWithClient(&tgClient{BotAPI: botAPI}, cfg.ChatID), nil
}

// newNotifierWithClient 주입된 client로 Notifier를 생성합니다.
func newNotifierWithClient(c client, chatID int64) *telegramNotifier {
	return &telegramNotifier{
		Base: notifier.NewBase(constants.NotifierIDTelegram, constants.TelegramNotifierBufferSize, constants.DefaultEnqueueTimeout),

		chatID: chatID,
		client: c,

		retryDelay: constants.DefaultRetryDelay,
		maxRetries: constants.DefaultMaxRetries,

		limiter: rate.NewLimiter(rate.Limit(constants.DefaultRateLimit), constants.DefaultRateBurst),

		sendTimeout:     constants.TelegramSendTimeout,
		shutdownTimeout: constants.TelegramShutdownTimeout,
	}
}
