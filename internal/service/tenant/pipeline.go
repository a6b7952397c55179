package tenant

import (
	"context"
)

// Pipeline 설정된 라이선스 키로 검증한 뒤 웹사이트를 해석합니다.
type Pipeline struct {
	verifier   Verifier
	resolver   Resolver
	licenseKey string
	fallbackID string
}

// NewPipeline 새로운 Pipeline을 생성합니다.
func NewPipeline(verifier Verifier, resolver Resolver, licenseKey, fallbackID string) *Pipeline {
	if verifier == nil {
		panic("tenant: Verifier는 필수입니다")
	}
	if resolver == nil {
		panic("tenant: Resolver는 필수입니다")
	}

	return &Pipeline{
		verifier:   verifier,
		resolver:   resolver,
		licenseKey: licenseKey,
		fallbackID: fallbackID,
	}
}

// Resolve 요청마다 라이선스를 다시 검증하고 웹사이트를 해석합니다.
func (p *Pipeline) Resolve(ctx context.Context) (Resolution, error) {
	verdict := p.verifier.Verify(ctx, p.licenseKey)
	return p.resolver.Resolve(ctx, verdict, p.fallbackID)
}

// Verify 설정된 라이선스 키만 검증합니다.
func (p *Pipeline) Verify(ctx context.Context) LicenseVerdict {
	return p.verifier.Verify(ctx, p.licenseKey)
}
