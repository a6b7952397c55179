package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Unauthorized 인증 실패 (라이선스 키 거부 등)
	Unauthorized

	// Forbidden 권한 없음
	Forbidden

	// InvalidInput 잘못된 입력값 (설정값 검증 실패 등)
	InvalidInput

	// Conflict 리소스 충돌
	Conflict

	// NotFound 리소스를 찾을 수 없음 (존재하지 않는 웹사이트 ID 등)
	NotFound

	// ExecutionFailed 외부 호출 또는 처리 실패
	ExecutionFailed

	// ParsingFailed 응답 파싱 또는 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가 (백엔드 장애 등)
	Unavailable
)
