package middleware

import (
	"sync"

	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// maxIPRateLimiters 추적하는 IP 수의 상한입니다. 초과하면 맵을 비우고 다시 채운다.
const maxIPRateLimiters = 10000

// ipRateLimiter IP 주소별 토큰 버킷을 관리합니다.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// getLimiter IP에 대한 Limiter를 반환하며, 없으면 새로 만든다.
func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if limiter, exists := i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		clear(i.limiters)
	}

	limiter := rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter

	return limiter
}

func (i *ipRateLimiter) size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.limiters)
}

// RateLimit IP 기반 요청 제한 미들웨어를 반환합니다.
//
// 제한을 초과하면 Retry-After 헤더와 함께 429를 반환합니다.
// requestsPerSecond 또는 burst가 0 이하이면 panic이 발생합니다.
func RateLimit(requestsPerSecond float64, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic("RateLimit: requestsPerSecond는 양수여야 합니다")
	}
	if burst <= 0 {
		panic("RateLimit: burst는 양수여야 합니다")
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("요청 제한 초과")

				c.Response().Header().Set(constants.HeaderRetryAfter, "1")
				return ErrRateLimitExceeded
			}

			return next(c)
		}
	}
}
