package tenant

import (
	"mime"
	"net/url"
	"path"
	"slices"
	"strings"

	apperrors "github.com/darkkaiser/crafter-tenant-server/internal/pkg/errors"
	"github.com/darkkaiser/crafter-tenant-server/pkg/strutil"
)

// 브랜드 색상은 테넌트와 무관하게 고정입니다.
const (
	ThemeColor      = "#000000"
	BackgroundColor = "#ffffff"
)

const (
	DefaultAppName = "Crafter Minecraft CMS"

	defaultShortName   = "Crafter"
	defaultDescription = "Content management system for Minecraft servers"

	manifestFallbackName        = "Varsayılan Uygulama"
	manifestFallbackShortName   = "App"
	manifestFallbackDescription = "Varsayılan açıklama"

	manifestDisplay     = "standalone"
	manifestOrientation = "portrait-primary"
	manifestStartURL    = "/"
	iconPurpose         = "maskable any"

	defaultIcon192 = "/images/icon-192x192.png"
	defaultIcon512 = "/images/icon-512x512.png"
	defaultFavicon = "/favicon.ico"
)

var defaultKeywords = []string{"crafter", "minecraft", "cms"}

// AppConfig 프런트엔드 셸이 사용하는 앱 메타데이터입니다.
type AppConfig struct {
	AppName         string   `json:"appName"`
	ShortName       string   `json:"shortName"`
	Description     string   `json:"description"`
	ThemeColor      string   `json:"themeColor"`
	BackgroundColor string   `json:"backgroundColor"`
	Icon192         string   `json:"icon192"`
	Icon512         string   `json:"icon512"`
	Favicon         string   `json:"favicon"`
	GAID            string   `json:"gaId"`
	Keywords        []string `json:"keywords"`
}

// ManifestIcon PWA 매니페스트의 아이콘 항목입니다.
type ManifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

// Manifest W3C Web App Manifest 형식의 PWA 매니페스트입니다. 아이콘은 항상 192x192, 512x512 두 개입니다.
type Manifest struct {
	Name            string          `json:"name"`
	ShortName       string          `json:"short_name"`
	Description     string          `json:"description"`
	StartURL        string          `json:"start_url"`
	Icons           [2]ManifestIcon `json:"icons"`
	Display         string          `json:"display"`
	Orientation     string          `json:"orientation"`
	ThemeColor      string          `json:"theme_color"`
	BackgroundColor string          `json:"background_color"`
}

// DefaultAppConfig 컴파일 시점 기본 앱 설정을 반환합니다. 호출마다 새 값을 반환합니다.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName:         DefaultAppName,
		ShortName:       defaultShortName,
		Description:     defaultDescription,
		ThemeColor:      ThemeColor,
		BackgroundColor: BackgroundColor,
		Icon192:         defaultIcon192,
		Icon512:         defaultIcon512,
		Favicon:         defaultFavicon,
		GAID:            "",
		Keywords:        slices.Clone(defaultKeywords),
	}
}

// DefaultManifest 컴파일 시점 기본 매니페스트를 반환합니다.
func DefaultManifest() Manifest {
	return Manifest{
		Name:            DefaultAppName,
		ShortName:       defaultShortName,
		Description:     defaultDescription,
		StartURL:        manifestStartURL,
		Icons:           manifestIcons(defaultIcon192, defaultIcon512),
		Display:         manifestDisplay,
		Orientation:     manifestOrientation,
		ThemeColor:      ThemeColor,
		BackgroundColor: BackgroundColor,
	}
}

// DeriveAppConfig 웹사이트 레코드로부터 앱 설정을 파생합니다.
// 레코드가 없거나 이름 또는 이미지가 비어 있으면 DefaultAppConfig를 그대로 반환합니다.
// 파비콘이 없으면 아이콘 이미지를, 설명이 없으면 기본 설명을 사용합니다.
func DeriveAppConfig(site *Website, assetBaseURL string) Result[AppConfig] {
	return ResolveWithFallback(func() (AppConfig, error) {
		return deriveAppConfig(site, assetBaseURL)
	}, DefaultAppConfig())
}

func deriveAppConfig(site *Website, assetBaseURL string) (AppConfig, error) {
	if site == nil {
		return AppConfig{}, errNoWebsite()
	}

	name := strutil.NormalizeText(site.Name)
	if name == "" {
		return AppConfig{}, apperrors.New(apperrors.InvalidInput, "웹사이트 이름이 비어 있어 앱 설정을 파생할 수 없습니다")
	}
	if strings.TrimSpace(site.Image) == "" {
		return AppConfig{}, apperrors.New(apperrors.InvalidInput, "웹사이트 이미지가 없어 앱 아이콘을 만들 수 없습니다")
	}

	description, err := strutil.HTMLToText(site.Description)
	if err != nil {
		return AppConfig{}, apperrors.Wrap(err, apperrors.ParsingFailed, "웹사이트 설명을 텍스트로 변환하지 못했습니다")
	}
	if description == "" {
		description = defaultDescription
	}

	icon := ResolveAssetURL(assetBaseURL, site.Image)
	favicon := icon
	if strings.TrimSpace(site.Favicon) != "" {
		favicon = ResolveAssetURL(assetBaseURL, site.Favicon)
	}

	return AppConfig{
		AppName:         name,
		ShortName:       name,
		Description:     description,
		ThemeColor:      ThemeColor,
		BackgroundColor: BackgroundColor,
		Icon192:         icon,
		Icon512:         icon,
		Favicon:         favicon,
		GAID:            strings.TrimSpace(site.AnalyticsID),
		Keywords:        normalizeKeywords(site.Keywords),
	}, nil
}

// DeriveManifest 웹사이트 레코드로부터 PWA 매니페스트를 파생합니다.
// 레코드가 없거나 아이콘으로 쓸 이미지가 없으면 DefaultManifest를 그대로 반환합니다.
func DeriveManifest(site *Website, assetBaseURL string) Result[Manifest] {
	return ResolveWithFallback(func() (Manifest, error) {
		return deriveManifest(site, assetBaseURL)
	}, DefaultManifest())
}

func deriveManifest(site *Website, assetBaseURL string) (Manifest, error) {
	if site == nil {
		return Manifest{}, errNoWebsite()
	}

	if strings.TrimSpace(site.Image) == "" {
		return Manifest{}, apperrors.New(apperrors.InvalidInput, "웹사이트 이미지가 없어 매니페스트 아이콘을 만들 수 없습니다")
	}

	name, shortName := strutil.NormalizeText(site.Name), ""
	if name == "" {
		name, shortName = manifestFallbackName, manifestFallbackShortName
	} else {
		shortName = name
	}

	description, err := strutil.HTMLToText(site.Description)
	if err != nil {
		return Manifest{}, apperrors.Wrap(err, apperrors.ParsingFailed, "웹사이트 설명을 텍스트로 변환하지 못했습니다")
	}
	if description == "" {
		description = manifestFallbackDescription
	}

	icon := ResolveAssetURL(assetBaseURL, site.Image)

	return Manifest{
		Name:            name,
		ShortName:       shortName,
		Description:     description,
		StartURL:        manifestStartURL,
		Icons:           manifestIcons(icon, icon),
		Display:         manifestDisplay,
		Orientation:     manifestOrientation,
		ThemeColor:      ThemeColor,
		BackgroundColor: BackgroundColor,
	}, nil
}

func manifestIcons(src192, src512 string) [2]ManifestIcon {
	return [2]ManifestIcon{
		{Src: src192, Sizes: "192x192", Type: iconMimeType(src192), Purpose: iconPurpose},
		{Src: src512, Sizes: "512x512", Type: iconMimeType(src512), Purpose: iconPurpose},
	}
}

// ResolveAssetURL 백엔드가 반환한 상대 경로 앞에 자산 주소를 붙입니다.
// 절대 URL, 프로토콜 상대 URL, data URI는 그대로 반환합니다.
//
//	ResolveAssetURL("https://api.example.com", "/uploads/logo.png") // "https://api.example.com/uploads/logo.png"
func ResolveAssetURL(assetBaseURL, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}

	lower := strings.ToLower(p)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "data:") || strings.HasPrefix(p, "//") {
		return p
	}

	return strings.TrimRight(assetBaseURL, "/") + "/" + strings.TrimLeft(p, "/")
}

func iconMimeType(src string) string {
	p := src
	if u, err := url.Parse(src); err == nil {
		p = u.Path
	}
	if t := mime.TypeByExtension(strings.ToLower(path.Ext(p))); strings.HasPrefix(t, "image/") {
		return t
	}
	return "image/png"
}

func normalizeKeywords(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strutil.NormalizeText(k); k != "" {
			result = append(result, k)
		}
	}
	if len(result) == 0 {
		return slices.Clone(defaultKeywords)
	}
	return strutil.UniqueFold(result)
}

func errNoWebsite() error {
	return apperrors.New(apperrors.NotFound, "파생에 사용할 웹사이트 레코드가 없습니다")
}
