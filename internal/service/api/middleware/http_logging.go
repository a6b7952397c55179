package middleware

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록하는 값
const defaultBytesIn = "0"

// sensitiveQueryParams 로그에 남기기 전에 값을 마스킹하는 쿼리 파라미터 (대소문자 무시)
var sensitiveQueryParams = []string{
	"license_key",
	"licensekey",
	"key",
	"api_key",
	"token",
	"secret",
	"password",
}

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
//
// 쿼리 문자열의 라이선스 키 등 민감한 값은 마스킹됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// 패닉이 발생해도 기록되도록 defer로 남긴다.
			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = defaultBytesIn
				}

				applog.WithFields(applog.Fields{
					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),
					"referer":    req.Referer(),

					"status":        res.Status,
					"bytes_in":      bytesIn,
					"bytes_out":     strconv.FormatInt(res.Size, 10),
					"cache_control": res.Header().Get(constants.HeaderCacheControl),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}).Info("HTTP 요청")
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}

			return nil
		}
	}
}

// maskSensitiveQueryParams URI의 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱할 수 없는 URI는 그대로 반환합니다.
//
//	"/website?license_key=ABCD-1234-EFGH-5678" -> "/website?license_key=ABCD%2A%2A%2A5678"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for key, values := range q {
		if !isSensitiveQueryParam(key) {
			continue
		}
		for i, v := range values {
			values[i] = applog.MaskSensitiveData(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}

func isSensitiveQueryParam(key string) bool {
	key = strings.ToLower(key)
	for _, p := range sensitiveQueryParams {
		if key == p {
			return true
		}
	}
	return false
}
