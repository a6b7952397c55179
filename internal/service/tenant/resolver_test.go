package tenant

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend 웹사이트 ID별 응답 본문을 제공하는 테스트 백엔드입니다. 등록되지 않은 ID는 404입니다.
func fakeBackend(t *testing.T, sites map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := strings.CutPrefix(r.URL.Path, "/api/website/")
		if !ok || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		body, ok := sites[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestResolver(baseURL string) *WebsiteResolver {
	cfg := config.BackendConfig{BaseURL: baseURL + "/", Timeout: 200 * time.Millisecond}
	return NewWebsiteResolver(cfg, fetcher.New(fetcher.Options{Timeout: cfg.Timeout}))
}

func TestWebsiteResolver_Resolve(t *testing.T) {
	srv := fakeBackend(t, map[string]string{
		"licensed": `{"id":"licensed","name":"Licensed Server"}`,
		"fallback": `{"website":{"_id":"fallback","name":"Fallback Server"}}`,
	})
	r := newTestResolver(srv.URL)

	t.Run("유효한 판정은 판정의 테넌트", func(t *testing.T) {
		res, err := r.Resolve(t.Context(), LicenseVerdict{Valid: true, TenantID: "licensed"}, "fallback")
		require.NoError(t, err)
		assert.False(t, res.IsExpired)
		assert.Equal(t, "licensed", res.Website.ID)
		assert.Equal(t, "Licensed Server", res.Website.Name)
	})

	t.Run("무효한 판정은 대체 테넌트", func(t *testing.T) {
		res, err := r.Resolve(t.Context(), LicenseVerdict{Valid: false, Reason: "expired"}, "fallback")
		require.NoError(t, err)
		assert.True(t, res.IsExpired)
		assert.Equal(t, "fallback", res.Website.ID)
	})

	t.Run("조회 실패는 에러", func(t *testing.T) {
		res, err := r.Resolve(t.Context(), LicenseVerdict{Valid: true, TenantID: "missing"}, "fallback")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
		assert.Equal(t, apperrors.NotFound, apperrors.UnderlyingType(err))
		assert.Nil(t, res.Website)
		assert.True(t, res.IsExpired)
	})

	t.Run("멱등성", func(t *testing.T) {
		v := LicenseVerdict{Valid: true, TenantID: "licensed"}
		first, err := r.Resolve(t.Context(), v, "fallback")
		require.NoError(t, err)
		second, err := r.Resolve(t.Context(), v, "fallback")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestWebsiteResolver_BackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	_, err := newTestResolver(baseURL).Resolve(t.Context(), LicenseVerdict{}, "fallback")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
}

func TestWebsiteResolver_Fetch(t *testing.T) {
	srv := fakeBackend(t, map[string]string{
		"snake":     `{"data":{"website_id":"ignored","id":"snake","name":"Snake","analytics_id":"G-1","keywords":"pvp, survival","broadcast_items":["Hello",{"message":"Sale","url":"/store"}]}}`,
		"noid":      `{"name":"No Id"}`,
		"empty":     `{"website":{"description":"x"}}`,
		"broken":    `{"id":`,
		"array":     `[1,2]`,
		"wrongtype": `{"id":"w","name":"n","keywords":{"a":1}}`,
		"a b":       `{"id":"a b","name":"Escaped"}`,
	})
	r := newTestResolver(srv.URL)

	t.Run("snake_case와 data 봉투", func(t *testing.T) {
		site, err := r.Fetch(t.Context(), "snake")
		require.NoError(t, err)
		assert.Equal(t, &Website{
			ID:          "snake",
			Name:        "Snake",
			AnalyticsID: "G-1",
			Keywords:    []string{"pvp", "survival"},
			BroadcastItems: []BroadcastItem{
				{Message: "Hello"},
				{Message: "Sale", URL: "/store"},
			},
		}, site)
	})

	t.Run("ID가 없으면 요청한 ID 사용", func(t *testing.T) {
		site, err := r.Fetch(t.Context(), "noid")
		require.NoError(t, err)
		assert.Equal(t, "noid", site.ID)
	})

	t.Run("경로 이스케이프", func(t *testing.T) {
		site, err := r.Fetch(t.Context(), "a b")
		require.NoError(t, err)
		assert.Equal(t, "Escaped", site.Name)
	})

	for _, id := range []string{"empty", "broken", "array", "wrongtype"} {
		t.Run("비정상 레코드: "+id, func(t *testing.T) {
			_, err := r.Fetch(t.Context(), id)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
		})
	}

	t.Run("빈 ID", func(t *testing.T) {
		_, err := r.Fetch(t.Context(), " ")
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}
