package domain

import (
	"net/url"
	"strings"
)

// Accepted host sets per platform. A URL whose host is outside its platform's
// set is treated as entered under the wrong key and is not rendered.
var platformDomains = map[Platform][]string{
	PlatformInstagram: {"instagram.com", "instagr.am"},
	PlatformTwitter:   {"twitter.com", "x.com"},
	PlatformLinkedIn:  {"linkedin.com", "lnkd.in"},
	PlatformYouTube:   {"youtube.com", "youtu.be"},
	PlatformTikTok:    {"tiktok.com"},
	PlatformGitHub:    {"github.com"},
	PlatformFacebook:  {"facebook.com", "fb.com", "fb.me"},
}

// IsValidURL reports whether s is an acceptable link value. The empty string
// is valid: optional fields treat it as "not provided", not as an error.
// Non-empty values must parse as absolute http(s) URLs with a host.
func IsValidURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsValidPlatformURL reports whether s is a well-formed URL whose host
// belongs to the platform's accepted domain set. It decides rendering only;
// it never blocks saving a draft value.
func IsValidPlatformURL(s string, platform Platform) bool {
	if s == "" || !IsValidURL(s) {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, domain := range platformDomains[platform] {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// IsKnownPlatform reports whether p is in the supported platform set.
func IsKnownPlatform(p Platform) bool {
	_, ok := platformDomains[p]
	return ok
}

// Renderable reports whether the social entry passes the render-time filter:
// enabled, non-empty, and host-matched to its platform.
func (l SocialLink) Renderable(platform Platform) bool {
	return l.Enabled && l.URL != "" && IsValidPlatformURL(l.URL, platform)
}
