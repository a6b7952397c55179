package cachepolicy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		env       Env
		succeeded bool
		want      string
	}{
		{"개발 + 앱 설정 성공", KindAppConfig, EnvDevelopment, true, "no-store"},
		{"개발 + 매니페스트 실패", KindManifest, EnvDevelopment, false, "no-store"},
		{"개발 + 웹사이트 성공", KindWebsite, EnvDevelopment, true, "no-store"},
		{"운영 + 앱 설정 성공", KindAppConfig, EnvProduction, true, "public, max-age=1800, stale-while-revalidate=3600"},
		{"운영 + 매니페스트 성공", KindManifest, EnvProduction, true, "public, max-age=3600, stale-while-revalidate=86400"},
		{"운영 + 웹사이트 성공", KindWebsite, EnvProduction, true, "public, max-age=300, stale-while-revalidate=600"},
		{"운영 + 앱 설정 대체", KindAppConfig, EnvProduction, false, "public, max-age=300"},
		{"운영 + 매니페스트 대체", KindManifest, EnvProduction, false, "public, max-age=300"},
		{"운영 + 알 수 없는 종류", Kind("other"), EnvProduction, true, "public, max-age=300"},
		{"알 수 없는 환경은 캐시하지 않음", KindAppConfig, Env("staging"), true, "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := For(tt.kind, tt.env, tt.succeeded)
			assert.Equal(t, tt.want, p.Directive)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestEnvFromDebug(t *testing.T) {
	assert.Equal(t, EnvDevelopment, EnvFromDebug(true))
	assert.Equal(t, EnvProduction, EnvFromDebug(false))
}
