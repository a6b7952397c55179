package middleware

import (
	"runtime"

	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	componentPanicRecovery = "api.middleware.panic_recovery"

	// stackBufferSize 스택 트레이스 버퍼 크기 (4KB)
	stackBufferSize = 4 << 10
)

// PanicRecovery 핸들러에서 발생한 panic을 복구하고 스택 트레이스와 함께 기록하는 미들웨어를 반환합니다.
// 복구된 panic은 500 응답으로 변환됩니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err, ok := r.(error)
				if !ok {
					err = NewErrPanicRecovered(r)
				}

				stack := make([]byte, stackBufferSize)
				length := runtime.Stack(stack, false)

				fields := applog.Fields{
					"error":  err.Error(),
					"stack":  string(stack[:length]),
					"path":   c.Request().URL.Path,
					"method": c.Request().Method,
				}
				if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
					fields["request_id"] = requestID
				}

				applog.WithComponentAndFields(componentPanicRecovery, fields).Error("패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다")

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
