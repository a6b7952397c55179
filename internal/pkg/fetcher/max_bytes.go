package fetcher

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
)

// DefaultMaxBytes 응답 본문의 기본 크기 제한 (1MB)
const DefaultMaxBytes = 1 << 20

// maxBytesReader 크기 초과 에러를 AppError로 변환합니다.
type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return n, newErrResponseBodyTooLarge(r.limit)
		}
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}

// MaxBytesFetcher 응답 본문 크기를 제한하는 데코레이터입니다.
// Content-Length로 먼저 차단하고, 헤더가 없거나 조작된 경우에도 읽기 시점에 제한합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

var _ Fetcher = (*MaxBytesFetcher)(nil)

// NewMaxBytesFetcher limit이 0 이하이면 DefaultMaxBytes를 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) *MaxBytesFetcher {
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, newErrResponseBodyTooLarge(f.limit)
	}

	resp.Body = &maxBytesReader{
		rc:    http.MaxBytesReader(nil, resp.Body, f.limit),
		limit: f.limit,
	}

	return resp, nil
}

func newErrResponseBodyTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.InvalidInput, "응답 본문이 허용된 크기(%d바이트)를 초과했습니다", limit)
}
