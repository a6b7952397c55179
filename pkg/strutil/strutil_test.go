package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSpaces(t *testing.T) {
	assert.Equal(t, "hello world", NormalizeSpaces("  hello \n\t world  "))
	assert.Equal(t, "", NormalizeSpaces("   "))
}

func TestNormalizeText(t *testing.T) {
	// "é"를 e + U+0301(결합 문자)로 표현한 입력
	decomposed := "Cafe\u0301  Crafter"
	assert.Equal(t, "Caf\u00e9 Crafter", NormalizeText(decomposed))
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"일반 텍스트", "  Minecraft   sunucusu ", "Minecraft sunucusu"},
		{"인라인 태그", "<b>Hello</b> &amp; World", "Hello & World"},
		{"블록 경계", "<p>Hello</p><p>World</p>", "Hello World"},
		{"줄바꿈 태그", "line1<br>line2", "line1 line2"},
		{"스크립트 제거", "<p>safe</p><script>alert(1)</script>", "safe"},
		{"부등호 유지", "3 < 5", "3 < 5"},
		{"빈 문자열", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HTMLToText(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitAndTrim(" a, b ,,c ", ","))
	assert.Equal(t, []string{}, SplitAndTrim("", ","))
}

func TestUniqueFold(t *testing.T) {
	assert.Equal(t, []string{"Crafter", "cms"}, UniqueFold([]string{"Crafter", "crafter", "cms", "CMS"}))
	assert.Equal(t, []string{}, UniqueFold(nil))
}
