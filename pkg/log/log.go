// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// Setup으로 한 번 초기화한 뒤, 각 컴포넌트는 WithComponent 또는 WithComponentAndFields로
// component 필드가 포함된 Entry를 얻어 로그를 기록합니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields["component"] = component
	return logrus.WithFields(newFields)
}

// WithFields logrus.WithFields의 래퍼입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithError logrus.WithError의 래퍼입니다.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// StandardLogger 전역 logrus Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 Logger의 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 Logger의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 Logger의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 Logger의 현재 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// Info 레벨 로그를 기록합니다.
func Info(args ...any) { logrus.Info(args...) }

// Warn 레벨 로그를 기록합니다.
func Warn(args ...any) { logrus.Warn(args...) }

// Error 레벨 로그를 기록합니다.
func Error(args ...any) { logrus.Error(args...) }

// Debug 레벨 로그를 기록합니다.
func Debug(args ...any) { logrus.Debug(args...) }

// MaskSensitiveData 라이선스 키나 봇 토큰처럼 민감한 값을 로그에 남길 수 있도록 마스킹합니다.
//
//   - 3자 이하: 전체 마스킹
//   - 12자 이하: 앞 4자만 표시
//   - 그 외: 앞 4자 + 뒤 4자 표시
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 3 {
		return "***"
	}
	if len(data) <= 12 {
		return data[:4] + "***"
	}
	return data[:4] + "***" + data[len(data)-4:]
}
