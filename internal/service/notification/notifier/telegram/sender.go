package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/notification/notifier"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// formatMessage 에러 알림이면 강조 문구를 덧붙입니다.
func formatMessage(req notifier.Request) string {
	if req.ErrorOccurred {
		return fmt.Sprintf(msgErrorSuffix, req.Message)
	}
	return req.Message
}

// sendMessage 메시지를 전송합니다. messageMaxLength를 넘으면 줄 단위로 나누어 보내며,
// 한 조각이라도 실패하면 나머지는 보내지 않습니다.
func (n *telegramNotifier) sendMessage(ctx context.Context, message string) {
	for _, chunk := range splitMessage(message, messageMaxLength) {
		if ctx.Err() != nil {
			return
		}
		if err := n.sendSingleMessage(ctx, chunk, true); err != nil {
			return
		}
	}
}

// splitMessage 줄바꿈을 경계로 limit 바이트 이하의 조각으로 나눕니다.
// 한 줄이 limit보다 길면 UTF-8 문자 경계에서 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder
	sb.Grow(limit)

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed <= limit {
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(line)
			continue
		}

		flush()

		for len(line) > limit {
			var chunk string
			chunk, line = safeSplit(line, limit)
			chunks = append(chunks, chunk)
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}

// safeSplit UTF-8 문자열을 limit 바이트 이내의 마지막 문자 경계에서 자릅니다.
func safeSplit(s string, limit int) (chunk, remainder string) {
	if len(s) <= limit {
		return s, ""
	}

	i := limit
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	if i == 0 {
		return s[:limit], s[limit:]
	}

	return s[:i], s[i:]
}

// sendSingleMessage 메시지 한 건을 전송합니다.
//
//   - 429와 5xx, 네트워크 오류는 maxRetries까지 재시도합니다. Retry-After가 있으면 그만큼 기다립니다.
//   - HTML 모드에서 400이 반환되면 파싱 오류로 보고 일반 텍스트로 한 번 다시 보냅니다.
//   - 그 외 4xx는 즉시 실패합니다.
func (n *telegramNotifier) sendSingleMessage(ctx context.Context, message string, useHTML bool) error {
	messageConfig := tgbotapi.NewMessage(n.chatID, message)
	if useHTML {
		messageConfig.ParseMode = tgbotapi.ModeHTML
	}

	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"error":       err,
			}).Debug(constants.LogMsgTelegramRateLimitAbort)
			return err
		}
	}

	var lastErr error
	for attempt := 1; attempt <= n.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := n.client.Send(messageConfig)
		if err == nil {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"chat_id":     n.chatID,
				"attempt":     attempt,
				"mode":        parseModeName(messageConfig.ParseMode),
			}).Info(constants.LogMsgTelegramSendSuccess)
			return nil
		}

		lastErr = err
		applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
			"notifier_id": n.ID(),
			"chat_id":     n.chatID,
			"attempt":     attempt,
			"mode":        parseModeName(messageConfig.ParseMode),
			"error":       err,
		}).Warn(constants.LogMsgTelegramSendFail)

		code, retryAfter := telegramErrorCode(err)

		if useHTML && code == http.StatusBadRequest {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
			}).Warn(constants.LogMsgTelegramHTMLFallback)
			return n.sendSingleMessage(ctx, message, false)
		}

		if !isRetryable(code) {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"code":        code,
				"error":       err,
			}).Error(constants.LogMsgTelegramCriticalError)
			return err
		}

		if attempt == n.maxRetries {
			break
		}

		if code == http.StatusTooManyRequests && retryAfter > 0 {
			applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
				"notifier_id": n.ID(),
				"retry_after": retryAfter,
			}).Warn(constants.LogMsgTelegramRateLimitWait)
		}

		timer := time.NewTimer(n.retryWait(retryAfter))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	applog.WithComponentAndFields(constants.ComponentNotifierTelegram, applog.Fields{
		"notifier_id": n.ID(),
		"chat_id":     n.chatID,
		"max_retries": n.maxRetries,
		"error":       lastErr,
	}).Error(constants.LogMsgTelegramSendFinalFail)

	return lastErr
}

func (n *telegramNotifier) retryWait(retryAfter int) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	return n.retryDelay
}

// telegramErrorCode 텔레그램 API 에러에서 코드와 Retry-After(초)를 꺼냅니다.
// API 에러가 아니면(네트워크 오류 등) 0을 반환합니다.
func telegramErrorCode(err error) (code int, retryAfter int) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.ResponseParameters.RetryAfter
	}

	var apiErrValue tgbotapi.Error
	if errors.As(err, &apiErrValue) {
		return apiErrValue.Code, apiErrValue.ResponseParameters.RetryAfter
	}

	return 0, 0
}

// isRetryable 4xx 중에서는 429만 재시도합니다.
func isRetryable(code int) bool {
	if code >= 400 && code < 500 {
		return code == http.StatusTooManyRequests
	}
	return true
}

func parseModeName(mode string) string {
	if mode == tgbotapi.ModeHTML {
		return "HTML"
	}
	return "PlainText"
}
