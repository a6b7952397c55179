// Package fetcher 라이선스 서버와 백엔드 호출에 사용하는 HTTP 클라이언트 체인을 제공합니다.
//
// 각 기능(타임아웃, 로깅, 상태 코드 검사, 응답 크기 제한)은 Fetcher를 감싸는 데코레이터로 구현되며,
// New가 이를 표준 순서로 조립합니다. 재시도는 수행하지 않습니다. 요청 한 건에 외부 호출 한 번이 원칙입니다.
package fetcher

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

const component = "fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
// 성공 시 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetchBody 요청을 보내고 응답 본문을 UTF-8로 변환하여 반환합니다.
//
// 네트워크 에러와 타임아웃은 각각 Unavailable과 Timeout으로 분류됩니다.
// 상태 코드 검사는 체인의 StatusCodeFetcher가 담당합니다.
func FetchBody(ctx context.Context, f Fetcher, method, url string, header http.Header, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.Internal, "HTTP 요청 생성에 실패했습니다 (URL: %s)", RedactRawURL(url))
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := f.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err, url)
	}
	defer resp.Body.Close()

	utf8Reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "응답(%s)의 문자 인코딩 변환에 실패했습니다", RedactRawURL(url))
	}

	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, classifyTransportError(ctx, err, url)
	}

	return data, nil
}

// classifyTransportError 이미 분류된 AppError는 그대로 두고, 그 외 전송 에러를 도메인 에러로 변환합니다.
func classifyTransportError(ctx context.Context, err error, url string) error {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return err
	}

	var netErr net.Error
	if ctx.Err() != nil || (apperrors.As(err, &netErr) && netErr.Timeout()) {
		return apperrors.Wrapf(err, apperrors.Timeout, "외부 호출(%s)이 제한 시간 내에 완료되지 않았습니다", RedactRawURL(url))
	}
	return apperrors.Wrapf(err, apperrors.Unavailable, "외부 호출(%s) 중 네트워크 에러가 발생했습니다", RedactRawURL(url))
}

// drainAndCloseBody 커넥션 재사용을 위해 남은 본문을 일정량 비우고 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.CopyN(io.Discard, body, 64*1024)
	_ = body.Close()
}
