package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateHTTPURL 라이선스 서버나 백엔드 주소처럼 외부 호출에 사용할 절대 URL을 검증합니다.
// http/https 스키마와 호스트가 필요하며 쿼리와 프래그먼트는 허용하지 않습니다.
func ValidateHTTPURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fmt.Errorf("URL은 비어있을 수 없습니다")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", trimmed, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", trimmed)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("URL에 쿼리 또는 프래그먼트를 포함할 수 없습니다 (input=%q)", trimmed)
	}

	return validateHostPort(u)
}
