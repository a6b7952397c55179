// Package maputil 외부 시스템이 반환한 맵 데이터를 구조체로 변환하는 유틸리티 기능을 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode 입력 데이터를 제네릭 타입 T의 구조체로 변환하여 반환합니다.
//
// 기본 동작:
//   - 구조체의 `json` 태그를 기준으로 필드를 매핑합니다.
//   - "123" -> 123, 1 -> true 처럼 타입을 유연하게 보정합니다 (Weakly Typed).
//   - 구조체에 없는 입력 키는 무시합니다.
//   - "a, b" 형태의 문자열은 공백이 제거된 []string으로 변환됩니다.
//
// 키 표기법이 섞여 있는 입력(camelCase, snake_case, "_id")은 WithNormalizedKeys 옵션으로 처리합니다.
//
//	site, err := maputil.Decode[Website](raw, maputil.WithNormalizedKeys())
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}
	return output, nil
}

// DecodeTo 입력 데이터를 output이 가리키는 구조체에 채웁니다.
// output에 이미 있는 값은 입력에 없는 필드에 한해 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		MatchName:        cfg.matchName,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	matchName        func(mapKey, fieldName string) bool
	extraHooks       []mapstructure.DecodeHookFunc
}

// buildDecodeHook [사용자 정의 훅] -> [기본 훅] 순서의 훅 체인을 구성합니다.
func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+2)
	hooks = append(hooks, c.extraHooks...)
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		stringToSliceHookFunc(),
	)
	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// Option 디코딩 설정을 변경하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithWeaklyTypedInput 타입 자동 보정 여부를 설정합니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 구조체에 없는 입력 키가 있으면 에러를 반환합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithDecodeHook 기본 훅보다 먼저 실행될 사용자 정의 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}

// WithMatchName 입력 키와 필드 이름의 매칭 규칙을 지정합니다. (기본값: 대소문자 무시)
func WithMatchName(matchFunc func(mapKey, fieldName string) bool) Option {
	return func(c *decodingConfig) {
		c.matchName = matchFunc
	}
}

// WithNormalizedKeys 표기법과 무관하게 키를 매칭합니다.
// "analytics_id", "AnalyticsId", "analyticsId"는 모두 같은 필드로 매핑되며 "_id"는 "id"로 취급됩니다.
func WithNormalizedKeys() Option {
	return WithMatchName(func(mapKey, fieldName string) bool {
		return NormalizeKey(mapKey) == NormalizeKey(fieldName)
	})
}
