// Package mark 운영자 알림 메시지에 사용하는 이모지 상수를 모아둡니다.
package mark

// Mark 이모지 상수 타입입니다.
type Mark string

const (
	// Alert 라이선스 만료, 백엔드 장애 등
	Alert Mark = "🚨"

	// Recovered 정상 상태로 복귀
	Recovered Mark = "✅"

	// Info 시작/종료 등 일반 안내
	Info Mark = "ℹ️"
)

// WithSpace 마크 앞에 구분용 공백을 붙여 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}
