package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "crafter-tenant-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 계층형 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: CRAFTER_BACKEND__TIMEOUT=3s -> backend.timeout
	EnvPrefix = "CRAFTER_"

	DefaultOutboundTimeout         = 5 * time.Second
	DefaultMaxResponseBytes        = 1 << 20
	DefaultLicenseMaxResponseBytes = 64 << 10
	DefaultListenPort              = 8080
	DefaultMonitorTimeSpec         = "0 */10 * * * *"
)

// deploymentEnvKeys 배포 환경에서 접두사 없이 주입되는 환경 변수와 설정 키의 대응표입니다.
// 가장 높은 우선순위로 적용됩니다.
var deploymentEnvKeys = map[string]string{
	"LICENSE_KEY":        "license.key",
	"LICENSE_SERVER_URL": "license.server_url",
	"WEBSITE_ID":         "website.fallback_id",
	"BACKEND_URL":        "backend.base_url",
	"ASSET_BASE_URL":     "backend.asset_base_url",
	"APP_ENV":            "debug",
}

// Defaults 컴파일 시점의 기본 설정값을 반환합니다.
func Defaults() AppConfig {
	return AppConfig{
		License: LicenseConfig{
			Timeout:          DefaultOutboundTimeout,
			MaxResponseBytes: DefaultLicenseMaxResponseBytes,
		},
		Backend: BackendConfig{
			Timeout:          DefaultOutboundTimeout,
			MaxResponseBytes: DefaultMaxResponseBytes,
		},
		Monitor: MonitorConfig{
			TimeSpec: DefaultMonitorTimeSpec,
		},
		TenantAPI: TenantAPIConfig{
			WS: WSConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				Burst:             40,
			},
		},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 설정을 겹쳐 읽어 AppConfig를 생성합니다.
//
// 설정 파일이 존재하지 않는 것은 허용됩니다. 컨테이너 배포처럼 환경 변수만으로
// 설정을 주입하는 경우가 일반적이기 때문입니다. 파일이 존재하지만 형식이 잘못된 경우에는 에러입니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(Defaults(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	// 3. 접두사 환경 변수 (이중 언더스코어는 계층 구분자)
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 배포 환경 변수
	if err := k.Load(env.ProviderWithValue("", ".", mapDeploymentEnv), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "배포 환경 변수 로드에 실패했습니다")
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// mapDeploymentEnv 배포 환경 변수를 설정 키로 변환합니다.
// 대응표에 없거나 값이 비어 있는 변수는 무시합니다.
func mapDeploymentEnv(key, value string) (string, any) {
	target, ok := deploymentEnvKeys[key]
	if !ok || value == "" {
		return "", nil
	}

	if key == "APP_ENV" {
		return target, IsDevelopmentEnv(value)
	}

	return target, value
}

// IsDevelopmentEnv APP_ENV 값이 개발 환경을 가리키는지 판단합니다.
func IsDevelopmentEnv(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
