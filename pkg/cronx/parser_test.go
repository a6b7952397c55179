package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		isValid bool
	}{
		{"6필드 (초 포함)", "0 */10 * * * *", true},
		{"Descriptor", "@hourly", true},
		{"every 표현식", "@every 30s", true},
		{"5필드는 거부", "*/10 * * * *", false},
		{"빈 문자열", "", false},
		{"가비지", "every ten minutes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.spec)
			if tt.isValid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Cron 표현식 파싱 실패")
			}
		})
	}
}

func TestStandardParser_NextActivation(t *testing.T) {
	t.Parallel()

	schedule, err := StandardParser().Parse("0 */10 * * * *")
	require.NoError(t, err)

	next := schedule.Next(mustTime(t, "2026-01-01T00:03:15Z"))
	assert.True(t, mustTime(t, "2026-01-01T00:10:00Z").Equal(next), "next=%s", next)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}
