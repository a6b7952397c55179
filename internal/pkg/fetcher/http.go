package fetcher

import (
	"net/http"
	"time"
)

const defaultTimeout = 5 * time.Second

// HTTPFetcher 타임아웃과 기본 User-Agent가 적용된 기본 HTTP 클라이언트입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher 요청 전체(연결부터 본문 수신까지)에 timeout을 적용하는 HTTPFetcher를 생성합니다.
// timeout이 0 이하이면 기본값(5초)을 사용합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = timeout

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" && h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

// Timeout 설정된 요청 타임아웃을 반환합니다.
func (h *HTTPFetcher) Timeout() time.Duration {
	return h.client.Timeout
}
