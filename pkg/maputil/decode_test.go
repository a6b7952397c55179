package maputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AnalyticsID string   `json:"analyticsId"`
	Count       int      `json:"count"`
	Tags        []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	t.Run("기본 매핑과 타입 보정", func(t *testing.T) {
		got, err := Decode[sample](map[string]any{
			"id":      "w1",
			"name":    "Crafter",
			"count":   "3",
			"tags":    "a, b,,c",
			"unknown": true,
		})
		require.NoError(t, err)
		assert.Equal(t, &sample{ID: "w1", Name: "Crafter", Count: 3, Tags: []string{"a", "b", "c"}}, got)
	})

	t.Run("정규화된 키 매칭", func(t *testing.T) {
		got, err := Decode[sample](map[string]any{
			"_id":          "w2",
			"analytics_id": "G-123",
		}, WithNormalizedKeys())
		require.NoError(t, err)
		assert.Equal(t, "w2", got.ID)
		assert.Equal(t, "G-123", got.AnalyticsID)
	})

	t.Run("정규화 없이는 snake_case 키를 무시", func(t *testing.T) {
		got, err := Decode[sample](map[string]any{"analytics_id": "G-123"})
		require.NoError(t, err)
		assert.Empty(t, got.AnalyticsID)
	})

	t.Run("ErrorUnused", func(t *testing.T) {
		_, err := Decode[sample](map[string]any{"unknown": 1}, WithErrorUnused(true))
		assert.Error(t, err)
	})

	t.Run("타입 변환 실패", func(t *testing.T) {
		_, err := Decode[sample](map[string]any{"count": "many"})
		assert.Error(t, err)
	})

	t.Run("nil output", func(t *testing.T) {
		assert.Error(t, DecodeTo[sample](map[string]any{}, nil))
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"website_id":  "websiteId",
		"websiteId":   "websiteId",
		"WebsiteId":   "websiteId",
		"_id":         "id",
		" image ":     "image",
		"analyticsId": "analyticsId",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeKey(in), in)
	}
}
