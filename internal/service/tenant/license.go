package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/tidwall/gjson"
)

// 응답 형식이 서버 버전마다 달라 여러 경로를 순서대로 확인합니다.
var (
	verdictPaths = []string{"valid", "data.valid", "success"}
	tenantPaths  = []string{"websiteId", "website_id", "data.websiteId", "data.website_id", "tenantId", "data.tenantId"}
	messagePaths = []string{"message", "reason", "error", "data.message"}
)

const reasonEmptyKey = "라이선스 키가 설정되지 않았습니다"

// LicenseVerdict 라이선스 검증 결과입니다. Valid가 false인 것은 에러가 아니라 대체 테넌트로 가라는 신호입니다.
type LicenseVerdict struct {
	Valid    bool   `json:"valid"`
	TenantID string `json:"tenantId,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Verifier 라이선스 키를 검증합니다.
type Verifier interface {
	Verify(ctx context.Context, key string) LicenseVerdict
}

// LicenseVerifier 외부 라이선스 서버에 키를 검증합니다. 판정 결과는 캐시하지 않습니다.
type LicenseVerifier struct {
	serverURL string
	timeout   time.Duration
	fetcher   fetcher.Fetcher
}

var _ Verifier = (*LicenseVerifier)(nil)

// NewLicenseVerifier 새로운 LicenseVerifier를 생성합니다.
func NewLicenseVerifier(cfg config.LicenseConfig, f fetcher.Fetcher) *LicenseVerifier {
	return &LicenseVerifier{
		serverURL: cfg.ServerURL,
		timeout:   cfg.Timeout,
		fetcher:   f,
	}
}

// Verify 라이선스 서버를 한 번 호출하여 판정을 반환합니다.
// 전송 실패, 타임아웃, 비정상 응답은 모두 Valid=false로 반환되며 에러로 전파되지 않습니다.
func (v *LicenseVerifier) Verify(ctx context.Context, key string) LicenseVerdict {
	key = strings.TrimSpace(key)
	if key == "" {
		LicenseVerifications.WithLabelValues(VerificationInvalid).Inc()
		return LicenseVerdict{Valid: false, Reason: reasonEmptyKey}
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	body, _ := json.Marshal(map[string]string{"licenseKey": key})
	header := http.Header{
		"Content-Type": []string{"application/json"},
		"Accept":       []string{"application/json"},
	}

	data, err := fetcher.FetchBody(ctx, v.fetcher, http.MethodPost, v.serverURL, header, body)
	if statusErr, ok := rejection(err); ok {
		LicenseVerifications.WithLabelValues(VerificationInvalid).Inc()

		verdict := rejectedVerdict(statusErr)
		applog.WithComponentAndFields(component, applog.Fields{
			"license_key": applog.MaskSensitiveData(key),
			"status_code": statusErr.StatusCode,
			"reason":      verdict.Reason,
		}).Info("라이선스 서버가 키를 거부하여 미인증으로 처리합니다")

		return verdict
	}
	if err != nil {
		LicenseVerifications.WithLabelValues(VerificationError).Inc()

		applog.WithComponentAndFields(component, applog.Fields{
			"license_key": applog.MaskSensitiveData(key),
			"error":       err,
		}).Warn("라이선스 서버 호출에 실패하여 미인증으로 처리합니다")

		return LicenseVerdict{Valid: false, Reason: "라이선스 서버 호출 실패: " + err.Error()}
	}

	verdict := parseVerdict(data)
	if verdict.Valid {
		LicenseVerifications.WithLabelValues(VerificationValid).Inc()
	} else {
		LicenseVerifications.WithLabelValues(VerificationInvalid).Inc()
	}

	return verdict
}

// rejection 라이선스 서버의 4xx 응답을 키 거부로 판별합니다.
// 404(주소 오설정), 408, 429는 일시적이거나 호출 측 문제이므로 호출 실패로 남깁니다.
func rejection(err error) (*fetcher.HTTPStatusError, bool) {
	var statusErr *fetcher.HTTPStatusError
	if !errors.As(err, &statusErr) {
		return nil, false
	}

	switch code := statusErr.StatusCode; {
	case code < 400 || code >= 500:
		return nil, false
	case code == http.StatusNotFound, code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return nil, false
	}
	return statusErr, true
}

func rejectedVerdict(statusErr *fetcher.HTTPStatusError) LicenseVerdict {
	reason := fmt.Sprintf("라이선스 서버가 키를 거부했습니다 (HTTP %d)", statusErr.StatusCode)
	if gjson.Valid(statusErr.BodySnippet) {
		if msg, ok := firstOf(gjson.Parse(statusErr.BodySnippet), messagePaths); ok && msg.String() != "" {
			reason += ": " + msg.String()
		}
	}
	return LicenseVerdict{Valid: false, Reason: reason}
}

// parseVerdict 라이선스 서버 응답을 판정으로 변환합니다.
// 유효 플래그가 참이어도 테넌트 ID가 없으면 비정상 응답으로 보고 무효 처리합니다.
func parseVerdict(data []byte) LicenseVerdict {
	if !gjson.ValidBytes(data) {
		return LicenseVerdict{Valid: false, Reason: "라이선스 서버 응답이 올바른 JSON이 아닙니다"}
	}

	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return LicenseVerdict{Valid: false, Reason: "라이선스 서버 응답이 객체가 아닙니다"}
	}

	flag, ok := firstOf(res, verdictPaths)
	if !ok {
		return LicenseVerdict{Valid: false, Reason: "라이선스 서버 응답에 판정 필드가 없습니다"}
	}
	if !flag.Bool() {
		reason := "라이선스가 유효하지 않습니다"
		if msg, ok := firstOf(res, messagePaths); ok && msg.String() != "" {
			reason += ": " + msg.String()
		}
		return LicenseVerdict{Valid: false, Reason: reason}
	}

	tenant, ok := firstOf(res, tenantPaths)
	if !ok || strings.TrimSpace(tenant.String()) == "" {
		return LicenseVerdict{Valid: false, Reason: "유효한 라이선스 응답에 웹사이트 ID가 없습니다"}
	}

	return LicenseVerdict{Valid: true, TenantID: strings.TrimSpace(tenant.String())}
}

func firstOf(res gjson.Result, paths []string) (gjson.Result, bool) {
	for _, p := range paths {
		if r := res.Get(p); r.Exists() && r.Type != gjson.Null {
			return r, true
		}
	}
	return gjson.Result{}, false
}
