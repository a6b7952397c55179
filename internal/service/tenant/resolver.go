package tenant

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/crafter-tenant-server/internal/config"
	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/internal/pkg/fetcher"
	applog "github.com/darkkaiser/crafter-tenant-server/pkg/log"
	"github.com/darkkaiser/crafter-tenant-server/pkg/maputil"
	"github.com/mitchellh/mapstructure"
	"github.com/tidwall/gjson"
)

// websiteEnvelopes 백엔드가 레코드를 감싸는 데 사용하는 필드 (순서대로 확인)
var websiteEnvelopes = []string{"website", "data.website", "data"}

// Resolution 웹사이트 해석 결과입니다.
type Resolution struct {
	Website *Website

	// IsExpired 유효한 라이선스가 없어 대체 웹사이트가 사용되었는지 여부
	IsExpired bool
}

// Resolver 라이선스 판정에 따라 권한 있는 웹사이트를 결정합니다.
type Resolver interface {
	Resolve(ctx context.Context, verdict LicenseVerdict, fallbackID string) (Resolution, error)
}

// WebsiteResolver 백엔드에서 웹사이트 레코드를 조회합니다.
type WebsiteResolver struct {
	baseURL string
	timeout time.Duration
	fetcher fetcher.Fetcher
}

var _ Resolver = (*WebsiteResolver)(nil)

// NewWebsiteResolver 새로운 WebsiteResolver를 생성합니다.
func NewWebsiteResolver(cfg config.BackendConfig, f fetcher.Fetcher) *WebsiteResolver {
	return &WebsiteResolver{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		fetcher: f,
	}
}

// Resolve 판정이 유효하면 판정의 테넌트를, 아니면 fallbackID의 웹사이트를 조회합니다.
//
// 백엔드 조회 실패는 대체 웹사이트로 바꾸지 않고 에러로 반환합니다.
// 대체 웹사이트 역시 같은 백엔드에서 조회해야 하기 때문입니다.
func (r *WebsiteResolver) Resolve(ctx context.Context, verdict LicenseVerdict, fallbackID string) (Resolution, error) {
	id, expired := verdict.TenantID, false
	if !verdict.Valid {
		id, expired = fallbackID, true

		applog.WithComponentAndFields(component, applog.Fields{
			"fallback_id": fallbackID,
			"reason":      verdict.Reason,
		}).Info("유효한 라이선스가 없어 대체 웹사이트로 해석합니다")
	}

	site, err := r.Fetch(ctx, id)
	if err != nil {
		WebsiteResolutions.WithLabelValues(ResolutionFailed).Inc()
		return Resolution{IsExpired: true}, err
	}

	if expired {
		WebsiteResolutions.WithLabelValues(ResolutionFallback).Inc()
	} else {
		WebsiteResolutions.WithLabelValues(ResolutionLicensed).Inc()
	}

	return Resolution{Website: site, IsExpired: expired}, nil
}

// Fetch 웹사이트 레코드 하나를 조회합니다.
//
// 응답은 레코드 자체이거나 website/data 필드로 감싼 형태일 수 있으며,
// 키는 camelCase와 snake_case가 섞여 있을 수 있습니다.
func (r *WebsiteResolver) Fetch(ctx context.Context, id string) (*Website, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "조회할 웹사이트 ID가 비어 있습니다")
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/api/website/%s", r.baseURL, url.PathEscape(id))
	header := http.Header{"Accept": []string{"application/json"}}

	data, err := fetcher.FetchBody(ctx, r.fetcher, http.MethodGet, endpoint, header, nil)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"website_id": id,
			"error":      err,
		}).Error("백엔드에서 웹사이트 레코드를 조회하지 못했습니다")

		return nil, apperrors.Wrapf(err, apperrors.Unavailable, "웹사이트(%s) 조회에 실패했습니다", id)
	}

	site, err := parseWebsite(data)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"website_id": id,
			"error":      err,
		}).Error("백엔드가 반환한 웹사이트 레코드가 올바르지 않습니다")

		return nil, err
	}

	if site.ID == "" {
		site.ID = id
	}

	return site, nil
}

func parseWebsite(data []byte) (*Website, error) {
	if !gjson.ValidBytes(data) {
		return nil, apperrors.New(apperrors.ParsingFailed, "웹사이트 응답이 올바른 JSON이 아닙니다")
	}

	obj := gjson.ParseBytes(data)
	for _, path := range websiteEnvelopes {
		if inner := obj.Get(path); inner.IsObject() {
			obj = inner
			break
		}
	}
	if !obj.IsObject() {
		return nil, apperrors.New(apperrors.ParsingFailed, "웹사이트 응답이 객체가 아닙니다")
	}

	raw, ok := obj.Value().(map[string]any)
	if !ok {
		return nil, apperrors.New(apperrors.ParsingFailed, "웹사이트 응답을 맵으로 변환하지 못했습니다")
	}

	site, err := maputil.Decode[Website](raw, maputil.WithNormalizedKeys(), maputil.WithDecodeHook(stringToBroadcastItemHook()))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "웹사이트 레코드 디코딩에 실패했습니다")
	}

	site.ID = strings.TrimSpace(site.ID)
	if site.ID == "" && strings.TrimSpace(site.Name) == "" {
		return nil, apperrors.New(apperrors.ParsingFailed, "웹사이트 레코드에 ID와 이름이 모두 없습니다")
	}

	return site, nil
}

// stringToBroadcastItemHook 문자열만으로 된 공지 항목을 BroadcastItem으로 변환합니다.
func stringToBroadcastItemHook() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(BroadcastItem{}) {
			return data, nil
		}
		return BroadcastItem{Message: reflect.ValueOf(data).String()}, nil
	}
}
