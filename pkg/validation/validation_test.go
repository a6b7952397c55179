package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	tests := []struct {
		name          string
		origin        string
		wantErr       bool
		errorContains string
	}{
		{name: "와일드카드", origin: "*"},
		{name: "HTTPS 도메인", origin: "https://crafter.example.com"},
		{name: "로컬호스트와 포트", origin: "http://localhost:3000"},
		{name: "IPv4", origin: "http://192.168.0.10:8080"},
		{name: "IPv6", origin: "http://[::1]:8080"},
		{name: "빈 문자열", origin: "", wantErr: true, errorContains: "비어있을 수 없습니다"},
		{name: "후행 슬래시", origin: "https://example.com/", wantErr: true, errorContains: "'/'"},
		{name: "경로 포함", origin: "https://example.com/app", wantErr: true},
		{name: "쿼리 포함", origin: "https://example.com?x=1", wantErr: true},
		{name: "지원하지 않는 스키마", origin: "ftp://example.com", wantErr: true, errorContains: "스키마"},
		{name: "포트 범위 초과", origin: "http://example.com:70000", wantErr: true},
		{name: "하이픈으로 시작하는 레이블", origin: "https://-bad.example.com", wantErr: true},
		{name: "숫자 TLD", origin: "https://example.123", wantErr: true, errorContains: "TLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCORSOrigin(tt.origin)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errorContains != "" {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"백엔드 기본 주소", "https://api.crafter.example.com", false},
		{"경로 포함 허용", "https://license.example.com/api/verify", false},
		{"포트 포함", "http://localhost:5000", false},
		{"빈 값", "", true},
		{"상대 경로", "/api/website", true},
		{"스키마 오류", "ws://example.com", true},
		{"쿼리 포함", "https://example.com/api?key=1", true},
		{"호스트 누락", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}
