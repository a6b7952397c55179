package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"InvalidInput", InvalidInput, "license.server_url 값이 비어 있습니다"},
		{"Unavailable", Unavailable, "백엔드 응답 없음"},
		{"빈 메시지", NotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.errType, tt.message)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
			assert.True(t, Is(err, tt.errType))
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(NotFound, "웹사이트(%s)를 찾을 수 없습니다", "site-1")

	assert.Equal(t, "[NotFound] 웹사이트(site-1)를 찾을 수 없습니다", err.Error())
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType  ErrorType
		expected string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{Forbidden, "Forbidden"},
		{InvalidInput, "InvalidInput"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{ParsingFailed, "ParsingFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(99), "ErrorType(99)"},
		{ErrorType(-1), "ErrorType(-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errType.String())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("표준 에러 래핑", func(t *testing.T) {
		wrapped := Wrap(errStd, Unavailable, "라이선스 서버 호출 실패")

		assert.Contains(t, wrapped.Error(), "라이선스 서버 호출 실패")
		assert.Contains(t, wrapped.Error(), "standard error")
		assert.True(t, Is(wrapped, Unavailable))
		assert.True(t, errors.Is(wrapped, errStd))
	})

	t.Run("nil 에러는 nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, Internal, "should be nil"))
		assert.Nil(t, Wrapf(nil, Internal, "should be %s", "nil"))
	})

	t.Run("중첩 체인", func(t *testing.T) {
		err := Wrap(Wrap(New(NotFound, "not found"), Internal, "internal"), System, "system")

		assert.True(t, Is(err, System))
		assert.True(t, Is(err, Internal))
		assert.True(t, Is(err, NotFound))
		assert.False(t, Is(err, Timeout))
	})
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	wrapped := Wrapf(context.DeadlineExceeded, Timeout, "백엔드 호출이 %s 내에 완료되지 않았습니다", "5s")

	assert.Contains(t, wrapped.Error(), "5s")
	assert.True(t, errors.Is(wrapped, context.DeadlineExceeded))
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"nil", nil, Unknown},
		{"표준 에러", errStd, Unknown},
		{"단일 AppError", New(ParsingFailed, "x"), ParsingFailed},
		{"가장 안쪽 AppError", Wrap(New(NotFound, "x"), Unavailable, "y"), NotFound},
		{"외부 에러를 감싼 AppError", Wrap(errStd, Timeout, "x"), Timeout},
		{"fmt 래핑 통과", fmt.Errorf("ctx: %w", New(Unavailable, "x")), Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnderlyingType(tt.err))
		})
	}
}

func TestAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", New(Unavailable, "backend down"))

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, Unavailable, appErr.Type())
	assert.Equal(t, "backend down", appErr.Message())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "root"), Unavailable, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[Unavailable] outer")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] root")
	assert.Contains(t, detailed, "Stack trace:")
}

func TestCaptureStack(t *testing.T) {
	t.Parallel()

	err := New(Internal, "x")

	var appErr *AppError
	require.True(t, As(err, &appErr))
	frames := appErr.Stack()
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), maxStackFrames)
	assert.Equal(t, "errors_test.go", frames[0].File)
	assert.Contains(t, frames[0].Function, "TestCaptureStack")
}
