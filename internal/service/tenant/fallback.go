package tenant

import apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"

// Source 파생 결과의 출처입니다.
type Source string

const (
	// SourceDerived 웹사이트 레코드에서 파생된 값
	SourceDerived Source = "derived"

	// SourceDefault 컴파일 시점 기본값
	SourceDefault Source = "default"
)

// Result 파생 값과 그 출처를 함께 담는 태그드 결과입니다.
// Source가 SourceDefault이면 Err에 대체 사유가 담깁니다.
type Result[T any] struct {
	Value  T
	Source Source
	Err    error
}

// Degraded 기본값으로 대체되었는지 여부를 반환합니다.
func (r Result[T]) Degraded() bool {
	return r.Source == SourceDefault
}

// ResolveWithFallback compute의 결과를 사용하고, 에러나 패닉이 발생하면 fallback을 그대로 반환합니다.
// 두 값을 섞지 않습니다.
func ResolveWithFallback[T any](compute func() (T, error), fallback T) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = Result[T]{
				Value:  fallback,
				Source: SourceDefault,
				Err:    apperrors.Newf(apperrors.Internal, "파생 중 패닉이 발생했습니다: %v", r),
			}
		}
	}()

	v, err := compute()
	if err != nil {
		return Result[T]{Value: fallback, Source: SourceDefault, Err: err}
	}
	return Result[T]{Value: v, Source: SourceDerived}
}
