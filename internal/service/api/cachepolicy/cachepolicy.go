// Package cachepolicy 응답 종류와 실행 환경, 해석 성공 여부에 따른 Cache-Control 값을 결정합니다.
//
// 해석 로직과 무관하게 HTTP 응답을 내보내는 시점에만 적용됩니다.
package cachepolicy

// Kind 캐시 정책이 적용되는 응답 종류입니다.
type Kind string

const (
	KindAppConfig Kind = "app-config"
	KindManifest  Kind = "manifest"
	KindWebsite   Kind = "website"
)

// Env 실행 환경입니다.
type Env string

const (
	EnvDevelopment Env = "development"
	EnvProduction  Env = "production"
)

// EnvFromDebug 디버그 모드 여부를 실행 환경으로 변환합니다.
func EnvFromDebug(debug bool) Env {
	if debug {
		return EnvDevelopment
	}
	return EnvProduction
}

const (
	directiveNoStore  = "no-store"
	directiveDegraded = "public, max-age=300"
)

var successDirectives = map[Kind]string{
	KindAppConfig: "public, max-age=1800, stale-while-revalidate=3600",
	KindManifest:  "public, max-age=3600, stale-while-revalidate=86400",
	KindWebsite:   "public, max-age=300, stale-while-revalidate=600",
}

// Policy Cache-Control 헤더 값입니다.
type Policy struct {
	Directive string
}

// String Cache-Control 헤더에 그대로 쓸 수 있는 값을 반환합니다.
func (p Policy) String() string {
	return p.Directive
}

// For 응답에 적용할 캐시 정책을 반환합니다.
//
//   - 개발 환경: 항상 no-store
//   - 운영 환경 + 성공: 종류별 장기 캐시 (stale-while-revalidate 포함)
//   - 운영 환경 + 대체/실패: 5분 단기 캐시
//
// 알 수 없는 종류의 성공 응답은 단기 캐시로 취급합니다.
func For(kind Kind, env Env, succeeded bool) Policy {
	if env != EnvProduction {
		return Policy{Directive: directiveNoStore}
	}
	if !succeeded {
		return Policy{Directive: directiveDegraded}
	}
	if d, ok := successDirectives[kind]; ok {
		return Policy{Directive: d}
	}
	return Policy{Directive: directiveDegraded}
}
