// Package mocks fetcher 패키지를 사용하는 코드의 테스트를 위한 Mock 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// MockFetcher Fetcher 인터페이스의 Mock 구현체 (Testify 사용)
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher 인스턴스를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	var resp *http.Response
	if r := args.Get(0); r != nil {
		resp = r.(*http.Response)
	}
	return resp, args.Error(1)
}

// MockReadCloser Close 호출 여부를 추적하는 io.ReadCloser입니다.
type MockReadCloser struct {
	io.Reader
	closed atomic.Int32
}

// NewMockReadCloser data를 읽어 주는 MockReadCloser를 생성합니다.
func NewMockReadCloser(data string) *MockReadCloser {
	return &MockReadCloser{Reader: bytes.NewBufferString(data)}
}

func (m *MockReadCloser) Close() error {
	m.closed.Add(1)
	return nil
}

// CloseCount Close가 호출된 횟수를 반환합니다.
func (m *MockReadCloser) CloseCount() int {
	return int(m.closed.Load())
}

// NewResponse 테스트용 응답을 생성합니다.
func NewResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        http.StatusText(statusCode),
		Header:        make(http.Header),
		Body:          NewMockReadCloser(body),
		ContentLength: int64(len(body)),
	}
}
