package middleware

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/stretchr/testify/require"
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

// parseLastLogEntry 버퍼의 마지막 JSON 로그 한 줄을 파싱합니다.
func parseLastLogEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	output := strings.TrimSpace(buf.String())
	require.NotEmpty(t, output, "로그가 기록되지 않았습니다")

	lines := strings.Split(output, "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	return entry
}
