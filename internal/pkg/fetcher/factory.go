package fetcher

import "time"

// Options Fetcher 체인 구성 옵션입니다.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
}

// New 표준 체인을 조립합니다.
//
//	MaxBytesFetcher -> StatusCodeFetcher -> LoggingFetcher -> HTTPFetcher
//
// 로깅은 상태 코드 검사보다 안쪽에 두어 실패 응답의 상태 코드도 기록되도록 한다.
func New(opts Options) Fetcher {
	var f Fetcher = NewHTTPFetcher(opts.Timeout, opts.UserAgent)
	f = NewLoggingFetcher(f)
	f = NewStatusCodeFetcher(f)
	f = NewMaxBytesFetcher(f, opts.MaxBytes)
	return f
}
