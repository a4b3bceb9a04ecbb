package visitor

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Emalachi/lazersolution/internal/domain/lead"
)

var (
	tabletRe = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobileRe = regexp.MustCompile(`Mobile|Android|iP(hone|od)|IEMobile|BlackBerry|Kindle|Silk-Accelerated|(hpw|web)OS|Opera M(obi|ini)`)
)

// DetectDeviceType classifies a user agent as Desktop, Mobile or Tablet.
// An Android UA without the Mobile token is a tablet.
func DetectDeviceType(ua string) string {
	lower := strings.ToLower(ua)
	if tabletRe.MatchString(ua) || (strings.Contains(lower, "android") && !strings.Contains(lower, "mobi")) {
		return "Tablet"
	}
	if mobileRe.MatchString(ua) {
		return "Mobile"
	}
	return "Desktop"
}

// DetectBrowser picks the browser family out of a user agent. Order
// matters: Chrome ships a Safari token, Edge ships a Chrome token.
func DetectBrowser(ua string) string {
	switch {
	case strings.Contains(ua, "Firefox"):
		return "Firefox"
	case strings.Contains(ua, "SamsungBrowser"):
		return "Samsung Browser"
	case strings.Contains(ua, "Opera") || strings.Contains(ua, "OPR"):
		return "Opera"
	case strings.Contains(ua, "Trident"):
		return "IE"
	case strings.Contains(ua, "Edge"):
		return "Edge"
	case strings.Contains(ua, "Chrome"):
		return "Chrome"
	case strings.Contains(ua, "Safari"):
		return "Safari"
	default:
		return "Unknown"
	}
}

// DetectOS picks the operating system out of a user agent.
func DetectOS(ua string) string {
	switch {
	case strings.Contains(ua, "Win"):
		return "Windows"
	case strings.Contains(ua, "like Mac"):
		return "iOS"
	case strings.Contains(ua, "Mac"):
		return "MacOS"
	case strings.Contains(ua, "Android"):
		return "Android"
	case strings.Contains(ua, "Linux"):
		return "Linux"
	default:
		return "Unknown"
	}
}

// Snapshot derives the client-environment metadata for one request.
// The screen resolution cannot be derived server-side, so the client
// reports it in the payload; everything else comes from the request.
func Snapshot(c *gin.Context, screenResolution string) *lead.Metadata {
	ua := c.Request.UserAgent()

	referrer := c.GetHeader("Referer")
	if referrer == "" {
		referrer = "Direct"
	}
	if screenResolution == "" {
		screenResolution = "Unknown"
	}

	return &lead.Metadata{
		IP:               c.ClientIP(),
		UserAgent:        ua,
		DeviceType:       DetectDeviceType(ua),
		Browser:          DetectBrowser(ua),
		OS:               DetectOS(ua),
		Referrer:         referrer,
		ScreenResolution: screenResolution,
	}
}
