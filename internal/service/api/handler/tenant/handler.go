// Package tenant 웹사이트 해석 결과와 그로부터 파생된 설정을 제공하는 핸들러입니다.
//
// /website는 백엔드 조회 실패를 500으로 명시적으로 알리고,
// /app-config와 /manifest는 실패 시 기본 설정으로 대체하여 항상 200을 반환합니다.
package tenant

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/cachepolicy"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/constants"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/api/model/response"
	"github.com/darkkaiser/crafter-tenant-server/internal/service/tenant"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// 파생 결과 집계 레이블
const (
	artifactAppConfig = "app_config"
	artifactManifest  = "manifest"
)

// WebsiteSource 요청 시점의 권한 있는 웹사이트를 결정합니다.
type WebsiteSource interface {
	Resolve(ctx context.Context) (tenant.Resolution, error)
}

// Handler 테넌트 엔드포인트 핸들러
type Handler struct {
	source WebsiteSource

	assetBaseURL string

	env cachepolicy.Env
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(source WebsiteSource, assetBaseURL string, env cachepolicy.Env) *Handler {
	if source == nil {
		panic(constants.PanicMsgWebsiteSourceRequired)
	}

	return &Handler{
		source:       source,
		assetBaseURL: assetBaseURL,
		env:          env,
	}
}

// WebsiteHandler godoc
// @Summary 현재 웹사이트 조회
// @Description 라이선스를 검증하여 권한 있는 웹사이트 레코드를 반환합니다.
// @Description 유효한 라이선스가 없으면 대체 웹사이트와 isExpired=true를 반환합니다.
// @Description 백엔드 조회에 실패하면 500과 success=false를 반환합니다.
// @Tags Tenant
// @Produce json
// @Success 200 {object} response.WebsiteResponse "해석된 웹사이트"
// @Failure 500 {object} response.WebsiteErrorResponse "백엔드 조회 실패"
// @Router /website [get]
func (h *Handler) WebsiteHandler(c echo.Context) error {
	res, err := h.resolve(c.Request().Context())
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"endpoint":   "/website",
			"remote_ip":  c.RealIP(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			"error":      err,
		}).Error(constants.LogMsgWebsiteUnresolved)

		h.setCachePolicy(c, cachepolicy.KindWebsite, false)
		return c.JSON(http.StatusInternalServerError, response.WebsiteErrorResponse{
			Success:   false,
			Error:     constants.ErrMsgWebsiteUnresolved,
			IsExpired: true,
		})
	}

	h.setCachePolicy(c, cachepolicy.KindWebsite, !res.IsExpired)
	return c.JSON(http.StatusOK, response.WebsiteResponse{
		Success:   true,
		Website:   res.Website,
		IsExpired: res.IsExpired,
	})
}

// AppConfigHandler godoc
// @Summary 애플리케이션 설정 조회
// @Description 현재 웹사이트에서 파생된 애플리케이션 메타데이터를 반환합니다.
// @Description 해석이나 파생에 실패해도 기본 설정으로 200을 반환합니다.
// @Tags Tenant
// @Produce json
// @Success 200 {object} tenant.AppConfig "애플리케이션 설정"
// @Header 200 {string} Cache-Control "캐시 정책"
// @Router /app-config [get]
func (h *Handler) AppConfigHandler(c echo.Context) error {
	res, resolved := h.resolveForDerivation(c, "/app-config")

	result := tenant.DeriveAppConfig(res.Website, h.assetBaseURL)
	tenant.ObserveDerivation(artifactAppConfig, result)
	h.logDegraded(c, "/app-config", result.Err)

	h.setCachePolicy(c, cachepolicy.KindAppConfig, resolved && !res.IsExpired && !result.Degraded())
	return c.JSON(http.StatusOK, result.Value)
}

// ManifestHandler godoc
// @Summary PWA 매니페스트 조회
// @Description 현재 웹사이트에서 파생된 Web App Manifest를 반환합니다.
// @Description 해석이나 파생에 실패해도 기본 매니페스트로 200을 반환합니다.
// @Tags Tenant
// @Produce json
// @Success 200 {object} tenant.Manifest "PWA 매니페스트"
// @Header 200 {string} Cache-Control "캐시 정책"
// @Router /manifest [get]
func (h *Handler) ManifestHandler(c echo.Context) error {
	res, resolved := h.resolveForDerivation(c, "/manifest")

	result := tenant.DeriveManifest(res.Website, h.assetBaseURL)
	tenant.ObserveDerivation(artifactManifest, result)
	h.logDegraded(c, "/manifest", result.Err)

	body, err := json.Marshal(result.Value)
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "매니페스트 직렬화에 실패했습니다")
	}

	h.setCachePolicy(c, cachepolicy.KindManifest, resolved && !res.IsExpired && !result.Degraded())
	return c.Blob(http.StatusOK, constants.MIMEApplicationManifest, body)
}

// resolveForDerivation 파생에 사용할 해석 결과를 반환합니다.
// 해석에 실패하면 웹사이트가 없는 결과와 false를 반환합니다.
func (h *Handler) resolveForDerivation(c echo.Context, endpoint string) (tenant.Resolution, bool) {
	res, err := h.resolve(c.Request().Context())
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
			"endpoint":   endpoint,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			"error":      err,
		}).Warn(constants.LogMsgWebsiteUnresolved)
		return tenant.Resolution{IsExpired: true}, false
	}
	return res, true
}

// resolve 해석 중 발생한 panic을 에러로 바꿉니다.
func (h *Handler) resolve(ctx context.Context) (res tenant.Resolution, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = tenant.Resolution{IsExpired: true}
			err = apperrors.Newf(apperrors.Internal, "웹사이트 해석 중 panic이 발생했습니다: %v", r)
		}
	}()

	return h.source.Resolve(ctx)
}

func (h *Handler) logDegraded(c echo.Context, endpoint string, err error) {
	if err == nil {
		return
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   endpoint,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		"error":      err,
	}).Warn(constants.LogMsgArtifactDegraded)
}

// setCachePolicy 대체 웹사이트로 해석되었거나 기본 설정으로 대체된 응답은 succeeded=false로 짧게 캐시합니다.
func (h *Handler) setCachePolicy(c echo.Context, kind cachepolicy.Kind, succeeded bool) {
	c.Response().Header().Set(constants.HeaderCacheControl, cachepolicy.For(kind, h.env, succeeded).String())
}
