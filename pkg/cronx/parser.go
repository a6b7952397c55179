// Package cronx 애플리케이션 전역에서 공유하는 Cron 표현식 규칙을 제공합니다.
package cronx

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 형식의 Cron 파서를 반환합니다.
//
//   - 필드 순서: [초] [분] [시] [일] [월] [요일]
//   - Descriptor(@daily, @every 1m 등)를 지원합니다.
//
// 예: "0 */10 * * * *" 매 10분 0초
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate spec이 StandardParser로 해석 가능한 표현식인지 검증합니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패(spec=%q): %w", spec, err)
	}
	return nil
}
