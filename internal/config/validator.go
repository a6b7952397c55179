package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// 텔레그램 봇 토큰 형식 (예: 123456:ABC-DEF1234ghIkl-zyx57W2v1u123ew11)
var telegramBotTokenRegex = regexp.MustCompile(`^\d{3,20}:[a-zA-Z0-9_-]{30,50}$`)

// newValidator 커스텀 검증 함수가 등록된 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 구조체 필드명 대신 JSON 키를 표시한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", func(fl validator.FieldLevel) bool {
		return validation.ValidateCORSOrigin(fl.Field().String()) == nil
	})
	mustRegister(v, "http_url", func(fl validator.FieldLevel) bool {
		return validation.ValidateHTTPURL(fl.Field().String()) == nil
	})
	mustRegister(v, "telegram_bot_token", func(fl validator.FieldLevel) bool {
		return telegramBotTokenRegex.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// checkStruct 구조체를 태그 규칙으로 검증하고, 첫 번째 위반 사항을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	fe := validationErrors[0]

	switch fe.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "FallbackID":
		return apperrors.New(apperrors.InvalidInput, "대체 웹사이트 ID(WEBSITE_ID 또는 website.fallback_id)가 설정되지 않았습니다")
	case "TLSCertFile", "TLSKeyFile":
		if fe.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s는 필수입니다", fe.Field()))
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", fe.Field(), fe.Value()))
	}

	switch fe.Tag() {
	case "required", "required_if":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 필수 항목(%s)이 설정되지 않았습니다", contextName, fe.Field()))
	case "http_url":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값이 올바른 http(s) 주소가 아닙니다: '%v'", contextName, fe.Field(), fe.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value()))
	case "telegram_bot_token":
		return apperrors.New(apperrors.InvalidInput, "텔레그램 BotToken 형식이 올바르지 않습니다 (올바른 형식: 123456:ABC-DEF...)")
	case "gt":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값은 0보다 커야 합니다: '%v'", contextName, fe.Field(), fe.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, fe.Field(), fe.Tag()))
}
