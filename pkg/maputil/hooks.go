package maputil

import (
	"reflect"
	"strings"

	"github.com/darkkaiser/crafter-tenant-server/pkg/strutil"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/mapstructure"
)

// NormalizeKey 키를 lowerCamelCase로 정규화합니다. 앞쪽의 밑줄은 제거됩니다.
//
//	NormalizeKey("website_id") // "websiteId"
//	NormalizeKey("_id")        // "id"
func NormalizeKey(key string) string {
	return strcase.ToLowerCamel(strings.TrimLeft(strings.TrimSpace(key), "_"))
}

// stringToSliceHookFunc 쉼표로 구분된 문자열을 공백이 제거된 슬라이스로 변환합니다.
// 빈 요소는 버립니다. []byte 대상은 변환하지 않습니다.
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
			return data, nil
		}
		if t.Elem().Kind() == reflect.Uint8 {
			return data, nil
		}

		return strutil.SplitAndTrim(reflect.ValueOf(data).String(), ","), nil
	}
}
