package api

import (
	"bytes"
	"testing"

	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
)

// captureLogs 테스트 동안 전역 로거 출력을 JSON 버퍼로 캡처하고 종료 시 복원합니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	prevOut, prevFormatter, prevLevel := logger.Out, logger.Formatter, logger.Level

	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(prevOut)
		applog.SetFormatter(prevFormatter)
		applog.SetLevel(prevLevel)
	})

	return buf
}
