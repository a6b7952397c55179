// Package system 시스템 엔드포인트 응답 모델을 정의합니다.
package system

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	Status       string                      `json:"status" example:"healthy"`
	Uptime       int64                       `json:"uptime" example:"3600"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus 외부 의존성 상태
type DependencyStatus struct {
	Status    string `json:"status" example:"healthy"`
	LatencyMs int64  `json:"latency_ms,omitempty" example:"12"`
	Message   string `json:"message,omitempty" example:"정상 작동 중"`
}

// VersionResponse 버전 정보 응답
type VersionResponse struct {
	Version     string `json:"version" example:"1.2.0"`
	Commit      string `json:"commit" example:"a1b2c3d"`
	BuildDate   string `json:"build_date" example:"2025-01-01T00:00:00Z"`
	BuildNumber string `json:"build_number" example:"42"`
	GoVersion   string `json:"go_version" example:"go1.24.0"`
}
