package fetcher

import (
	"net/url"
	"slices"
	"strings"
)

// sensitiveKeys 값이 마스킹되는 쿼리 파라미터 키 (대소문자 무시, 완전 일치)
var sensitiveKeys = []string{
	"token", "key", "secret", "password", "signature",
	"license", "license_key", "licensekey", "api_key", "access_token",
}

// RedactURL 사용자 정보와 민감한 쿼리 파라미터 값을 마스킹한 URL 문자열을 반환합니다.
// 원본 URL은 변경하지 않습니다.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		if _, has := u.User.Password(); has {
			ru.User = url.UserPassword(u.User.Username(), "xxxxx")
		} else if u.User.Username() != "" {
			ru.User = url.User("xxxxx")
		}
	}

	if u.RawQuery != "" {
		query := ru.Query()
		for key := range query {
			if slices.Contains(sensitiveKeys, strings.ToLower(key)) {
				query.Set(key, "xxxxx")
			}
		}
		ru.RawQuery = query.Encode()
	}

	return ru.String()
}

// RedactRawURL 문자열 URL에 RedactURL을 적용합니다. 파싱할 수 없으면 전체를 가립니다.
func RedactRawURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "xxxxx"
	}
	return RedactURL(u)
}
