// Package response API 응답 본문 모델을 정의합니다.
package response

import "github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"

// ErrorResponse 전역 에러 핸들러가 반환하는 표준 에러 응답입니다.
type ErrorResponse struct {
	ResultCode int    `json:"result_code" example:"404"`
	Message    string `json:"message" example:"요청한 리소스를 찾을 수 없습니다"`
}

// WebsiteResponse /website 성공 응답입니다.
type WebsiteResponse struct {
	Success   bool            `json:"success" example:"true"`
	Website   *tenant.Website `json:"website"`
	IsExpired bool            `json:"isExpired" example:"false"`
}

// WebsiteErrorResponse 백엔드 조회 실패 시 /website 응답입니다. IsExpired는 항상 true입니다.
type WebsiteErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"웹사이트 정보를 불러오지 못했습니다"`
	IsExpired bool   `json:"isExpired" example:"true"`
}
