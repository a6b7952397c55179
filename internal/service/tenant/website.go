// Package tenant 라이선스 검증으로 권한이 있는 웹사이트(테넌트)를 결정하고,
// 그 레코드로부터 앱 설정과 PWA 매니페스트를 파생합니다.
//
// 요청 한 건의 흐름은 LicenseVerifier -> WebsiteResolver -> Derive* 이며 각 단계는 독립적인 대체 정책을 가집니다.
// 패키지 내부에 요청 간 공유되는 가변 상태는 없습니다.
package tenant

import "slices"

const component = "tenant"

// Website 백엔드가 관리하는 테넌트 레코드입니다. 해석 과정에서 변경되지 않습니다.
type Website struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Image          string          `json:"image,omitempty"`
	Favicon        string          `json:"favicon,omitempty"`
	Keywords       []string        `json:"keywords,omitempty"`
	BroadcastItems []BroadcastItem `json:"broadcastItems,omitempty"`
	AnalyticsID    string          `json:"analyticsId,omitempty"`
}

// BroadcastItem 사이트 상단에 순환 노출되는 공지 항목입니다.
type BroadcastItem struct {
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// Clone 슬라이스까지 복사한 사본을 반환합니다.
func (w *Website) Clone() *Website {
	if w == nil {
		return nil
	}
	c := *w
	c.Keywords = slices.Clone(w.Keywords)
	c.BroadcastItems = slices.Clone(w.BroadcastItems)
	return &c
}
