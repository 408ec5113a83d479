// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known article publishing platform.
type Platform string

const (
	// PlatformWeixin is the WeChat public account article platform
	PlatformWeixin Platform = "weixin"
	// PlatformZhihu is the Zhihu column platform
	PlatformZhihu Platform = "zhihu"
	// PlatformToutiao is the Toutiao article platform
	PlatformToutiao Platform = "toutiao"
	// PlatformJianshu is the Jianshu blogging platform
	PlatformJianshu Platform = "jianshu"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the publishing platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "mp.weixin.qq.com") ||
		strings.Contains(host, "weixin.qq.com") {
		return PlatformWeixin
	}

	if strings.Contains(host, "zhihu.com") {
		return PlatformZhihu
	}

	if strings.Contains(host, "toutiao.com") ||
		strings.Contains(host, "toutiaocdn.com") {
		return PlatformToutiao
	}

	if strings.Contains(host, "jianshu.com") {
		return PlatformJianshu
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformWeixin:
		return []string{
			"#js_content",         // Primary WeChat article body
			".rich_media_content", // Fallback
			".rich_media_area_primary",
			"#img-content",
		}
	case PlatformZhihu:
		return []string{
			".Post-RichTextContainer",
			".Post-RichText",
			".RichText",
			".content",
		}
	case PlatformToutiao:
		return []string{
			".article-content",
			"article",
			".content",
		}
	case PlatformJianshu:
		return []string{
			"article",
			".show-content",
			"._2rhmJa",
		}
	default:
		return ArticleSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Comments and social widgets
		".comment-list",
		"#comments",
		".comments-section",
		".social-share",
		".share-buttons",
		".social-links",

		// Subscription and follow prompts
		".follow-button",
		".subscribe-banner",
		".signup-prompt",

		// Related content rails
		".related-articles",
		".recommend-list",
		".hot-list",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformWeixin:
		return append(common,
			"#js_pc_qr_code",
			".qr_code_pc_outer",
			".rich_media_tool",
			"#js_profile_qrcode",
			".reward_area",
		)
	case PlatformZhihu:
		return append(common,
			".Post-Sub",
			".Post-NormalSub",
			".Reward",
			".CornerButtons",
			".RichContent-actions",
		)
	case PlatformToutiao:
		return append(common,
			".article-meta",
			".detail-like",
			".android-banner",
		)
	case PlatformJianshu:
		return append(common,
			".follow-detail",
			".support-author",
			".meta-bottom",
		)
	default:
		return common
	}
}
