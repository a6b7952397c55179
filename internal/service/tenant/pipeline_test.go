package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	verdict LicenseVerdict
	gotKey  string
}

func (s *stubVerifier) Verify(_ context.Context, key string) LicenseVerdict {
	s.gotKey = key
	return s.verdict
}

func TestPipeline_Resolve(t *testing.T) {
	backend := fakeBackend(t, map[string]string{
		"tenant-a": `{"id":"tenant-a","name":"A"}`,
		"fallback": `{"id":"fallback","name":"Fallback"}`,
	})
	resolver := newTestResolver(backend.URL)

	t.Run("유효한 키", func(t *testing.T) {
		v := &stubVerifier{verdict: LicenseVerdict{Valid: true, TenantID: "tenant-a"}}
		res, err := NewPipeline(v, resolver, "KEY", "fallback").Resolve(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "KEY", v.gotKey)
		assert.Equal(t, "tenant-a", res.Website.ID)
		assert.False(t, res.IsExpired)
	})

	t.Run("빈 키는 대체 웹사이트", func(t *testing.T) {
		license := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("빈 키로 라이선스 서버를 호출하면 안 됩니다")
		}))
		defer license.Close()

		verifier := NewLicenseVerifier(config.LicenseConfig{ServerURL: license.URL, Timeout: time.Second}, fetcher.New(fetcher.Options{}))
		res, err := NewPipeline(verifier, resolver, "", "fallback").Resolve(t.Context())
		require.NoError(t, err)
		assert.True(t, res.IsExpired)
		assert.Equal(t, "fallback", res.Website.ID)
	})

	t.Run("유효한 키지만 백엔드 조회 실패", func(t *testing.T) {
		v := &stubVerifier{verdict: LicenseVerdict{Valid: true, TenantID: "unknown"}}
		res, err := NewPipeline(v, resolver, "KEY", "fallback").Resolve(t.Context())
		require.Error(t, err)
		assert.True(t, res.IsExpired)
	})

	t.Run("필수 의존성 누락", func(t *testing.T) {
		assert.Panics(t, func() { NewPipeline(nil, resolver, "", "fallback") })
		assert.Panics(t, func() { NewPipeline(&stubVerifier{}, nil, "", "fallback") })
	})
}
