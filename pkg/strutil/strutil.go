// Package strutil 문자열 정규화를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces 문자열의 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  hello   world  " -> "hello world"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeText NFC 정규화 후 공백을 정리합니다.
// 조합형으로 저장된 "Varsayılan" 같은 문자열도 동일한 바이트열로 맞춰집니다.
func NormalizeText(s string) string {
	return NormalizeSpaces(norm.NFC.String(s))
}

// HTMLToText HTML 조각에서 태그를 제거하고 엔티티를 디코딩한 텍스트를 반환합니다.
// 블록 요소 경계는 공백으로 바뀝니다.
//
//	HTMLToText("<p>Hello</p><p>&amp; World</p>") // "Hello & World"
func HTMLToText(s string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return NormalizeText(s), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", err
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml(" ")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6").AfterHtml(" ")

	return NormalizeText(doc.Text()), nil
}

// SplitAndTrim 구분자로 나눈 뒤 각 요소의 공백을 제거하고 빈 요소는 버립니다.
func SplitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// UniqueFold 대소문자를 무시하고 중복을 제거합니다. 처음 등장한 값과 순서를 유지합니다.
func UniqueFold(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}
