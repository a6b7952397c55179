package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/pkg/cronx"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체입니다.
// 프로세스 시작 시 한 번 생성되며 이후에는 변경되지 않습니다.
type AppConfig struct {
	Debug     bool            `json:"debug"`
	License   LicenseConfig   `json:"license"`
	Website   WebsiteConfig   `json:"website"`
	Backend   BackendConfig   `json:"backend"`
	Monitor   MonitorConfig   `json:"monitor"`
	Notifier  NotifierConfig  `json:"notifier"`
	TenantAPI TenantAPIConfig `json:"tenant_api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.License, "라이선스(license)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Website, "웹사이트(website)"); err != nil {
		return err
	}
	if err := checkStruct(v, c.Backend, "백엔드(backend)"); err != nil {
		return err
	}
	if err := c.Monitor.validate(); err != nil {
		return err
	}
	if err := checkStruct(v, c.Notifier.Telegram, "텔레그램 알림(notifier.telegram)"); err != nil {
		return err
	}
	return c.TenantAPI.validate(v)
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되지 않는 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if strings.TrimSpace(c.License.Key) == "" {
		warnings = append(warnings, fmt.Sprintf("라이선스 키(LICENSE_KEY)가 설정되지 않았습니다. 모든 요청이 대체 웹사이트('%s')로 처리됩니다", c.Website.FallbackID))
	}
	if !c.Debug && strings.HasPrefix(c.Backend.BaseURL, "http://") {
		warnings = append(warnings, fmt.Sprintf("운영 환경에서 암호화되지 않은 백엔드 주소를 사용하고 있습니다: '%s'", c.Backend.BaseURL))
	}
	if c.Monitor.Enabled && !c.Notifier.Telegram.Enabled {
		warnings = append(warnings, "라이선스 모니터가 활성화되었지만 텔레그램 알림이 비활성화되어 상태 변화가 로그로만 기록됩니다")
	}

	return append(warnings, c.TenantAPI.WS.VerifyRecommendations()...)
}

// LicenseConfig 라이선스 인증 서버 설정입니다.
type LicenseConfig struct {
	// Key 설치 라이선스 키입니다. 비어 있으면 항상 미인증으로 판정됩니다.
	Key       string        `json:"key"`
	ServerURL string        `json:"server_url" validate:"required,http_url"`
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`

	// MaxResponseBytes 판정 응답은 작은 JSON이므로 백엔드보다 낮게 제한합니다.
	MaxResponseBytes int64 `json:"max_response_bytes" validate:"gt=0"`
}

// WebsiteConfig 테넌트 해석 설정입니다.
type WebsiteConfig struct {
	// FallbackID 유효한 라이선스가 없을 때 사용하는 대체 웹사이트 ID입니다.
	FallbackID string `json:"fallback_id" validate:"required"`
}

// BackendConfig 웹사이트 레코드와 정적 자산을 제공하는 백엔드 설정입니다.
type BackendConfig struct {
	BaseURL string `json:"base_url" validate:"required,http_url"`

	// AssetBaseURL 이미지/파비콘 상대 경로 앞에 붙는 주소입니다. 비어 있으면 BaseURL을 사용합니다.
	AssetBaseURL string `json:"asset_base_url" validate:"omitempty,http_url"`

	Timeout          time.Duration `json:"timeout" validate:"gt=0"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"gt=0"`
}

// AssetBase 자산 URL 접두사를 후행 슬래시 없이 반환합니다.
func (c *BackendConfig) AssetBase() string {
	base := c.AssetBaseURL
	if strings.TrimSpace(base) == "" {
		base = c.BaseURL
	}
	return strings.TrimRight(strings.TrimSpace(base), "/")
}

// MonitorConfig 주기적인 라이선스 상태 점검 설정입니다.
type MonitorConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec"`
}

func (c *MonitorConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if err := cronx.Validate(c.TimeSpec); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("라이선스 모니터의 스케줄(monitor.time_spec) 설정이 유효하지 않습니다: '%s'", c.TimeSpec))
	}
	return nil
}

// NotifierConfig 운영자 알림 채널 설정입니다.
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 설정입니다.
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required_if=Enabled true,omitempty,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required_if=Enabled true"`
}

// TenantAPIConfig 테넌트 설정을 제공하는 HTTP 서버 설정입니다.
type TenantAPIConfig struct {
	WS        WSConfig        `json:"ws"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
}

func (c *TenantAPIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WS, "웹 서버(tenant_api.ws)"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return checkStruct(v, c.RateLimit, "요청 제한(tenant_api.rate_limit)")
}

// WSConfig 웹 서버의 포트 및 TLS 설정입니다.
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) VerifyRecommendations() []string {
	if c.ListenPort < 1024 {
		return []string{fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort)}
	}
	return nil
}

// CORSConfig CORS 허용 출처 설정입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
		}
	}
	return checkStruct(v, c, "CORS(tenant_api.cors)")
}

// RateLimitConfig IP별 요청 제한 설정입니다.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" validate:"gt=0"`
	Burst             int     `json:"burst" validate:"gt=0"`
}
