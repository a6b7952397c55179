package system

import (
	"context"
	"net/http"

	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
)

// DependencyChecker 헬스체크 대상 외부 의존성입니다.
type DependencyChecker interface {
	Name() string
	Check(ctx context.Context) error
}

type checkerFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func (c checkerFunc) Name() string                    { return c.name }
func (c checkerFunc) Check(ctx context.Context) error { return c.fn(ctx) }

// NewCheckerFunc 함수를 DependencyChecker로 감쌉니다.
func NewCheckerFunc(name string, fn func(ctx context.Context) error) DependencyChecker {
	return checkerFunc{name: name, fn: fn}
}

// ReachabilityChecker 대상 주소가 HTTP 응답을 돌려주는지만 확인합니다.
// 상태 코드와 무관하게 응답이 오면 도달 가능으로 판단합니다.
type ReachabilityChecker struct {
	name    string
	url     string
	fetcher fetcher.Fetcher
}

// NewReachabilityChecker 새로운 ReachabilityChecker를 생성합니다.
// f는 상태 코드 검사를 하지 않는 Fetcher여야 합니다.
func NewReachabilityChecker(name, url string, f fetcher.Fetcher) *ReachabilityChecker {
	return &ReachabilityChecker{name: name, url: url, fetcher: f}
}

func (c *ReachabilityChecker) Name() string {
	return c.name
}

func (c *ReachabilityChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return err
	}

	resp, err := c.fetcher.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}
