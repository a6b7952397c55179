package tenant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 라이선스 검증 결과 레이블
const (
	VerificationValid   = "valid"
	VerificationInvalid = "invalid"
	VerificationError   = "error"
)

// 웹사이트 해석 결과 레이블
const (
	ResolutionLicensed = "licensed"
	ResolutionFallback = "fallback"
	ResolutionFailed   = "failed"
)

var (
	LicenseVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crafter_license_verifications_total",
			Help: "Total number of license verifications by result",
		},
		[]string{"result"},
	)

	WebsiteResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crafter_website_resolutions_total",
			Help: "Total number of website resolutions by result",
		},
		[]string{"result"},
	)

	ArtifactDerivations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crafter_artifact_derivations_total",
			Help: "Total number of derived artifacts by artifact kind and source",
		},
		[]string{"artifact", "source"},
	)

	// LicenseValid 라이선스 모니터가 마지막으로 관측한 라이선스 상태 (1: 유효, 0: 무효)
	LicenseValid = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crafter_license_valid",
			Help: "Whether the last scheduled license verification succeeded (1) or not (0)",
		},
	)
)

// ObserveDerivation 파생 결과를 집계합니다.
func ObserveDerivation[T any](artifact string, r Result[T]) {
	ArtifactDerivations.WithLabelValues(artifact, string(r.Source)).Inc()
}
