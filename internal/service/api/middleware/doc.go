// Package middleware 테넌트 API 서버의 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 패닉 복구 및 스택 트레이스 로깅
//   - HTTPLogger: 요청/응답 로깅 (라이선스 키 등 민감한 쿼리 마스킹)
//   - RateLimit: IP 기반 요청 제한
//   - Logger: Echo 로거를 애플리케이션 로거로 연결하는 어댑터
package middleware
