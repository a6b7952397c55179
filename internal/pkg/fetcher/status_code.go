package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
)

// maxBodySnippet 에러 메시지에 포함할 응답 본문의 최대 길이
const maxBodySnippet = 512

// HTTPStatusError 허용되지 않은 상태 코드 응답을 나타냅니다.
// Cause에는 상태 코드에 따라 분류된 AppError가 담깁니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	BodySnippet string
	Cause       error
}

func (e *HTTPStatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d (%s)", e.StatusCode, e.Status)
	if e.URL != "" {
		msg += " URL: " + e.URL
	}
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// CheckResponseStatus 응답 상태 코드를 검사합니다. allowed가 비어 있으면 2xx 전체를 허용합니다.
//
//   - 5xx, 429: Unavailable
//   - 404: NotFound
//   - 그 외: ExecutionFailed
func CheckResponseStatus(resp *http.Response, allowed ...int) error {
	if len(allowed) == 0 {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
	} else if slices.Contains(allowed, resp.StatusCode) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	switch {
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		errType = apperrors.Unavailable
	case resp.StatusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	}

	var snippet string
	if resp.Body != nil {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
		snippet = strings.TrimSpace(string(b))
	}

	var url string
	if resp.Request != nil {
		url = RedactURL(resp.Request.URL)
	}

	return &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         url,
		BodySnippet: snippet,
		Cause:       apperrors.New(errType, fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %d", resp.StatusCode)),
	}
}

// StatusCodeFetcher 허용되지 않은 상태 코드를 에러로 변환하는 데코레이터입니다.
// 에러를 반환할 때는 응답 본문을 직접 정리하고 nil 응답을 반환합니다.
type StatusCodeFetcher struct {
	delegate Fetcher
	allowed  []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

// NewStatusCodeFetcher 2xx 응답만 통과시키는 StatusCodeFetcher를 생성합니다.
func NewStatusCodeFetcher(delegate Fetcher, allowed ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate, allowed: allowed}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := CheckResponseStatus(resp, f.allowed...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}
