// Package testutil 여러 패키지의 테스트에서 공유하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"testing"
	"time"
)

// FreePort 테스트용으로 비어 있는 TCP 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("사용 가능한 포트를 찾지 못했습니다: %v", err)
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForPort 서버가 포트에서 연결을 받을 때까지 대기합니다.
func WaitForPort(t testing.TB, port int, timeout time.Duration) {
	t.Helper()

	address := fmt.Sprintf("127.0.0.1:%d", port)
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Fatalf("서버가 %v 안에 포트 %d에서 시작되지 않았습니다", timeout, port)
}
