package visitor

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uaChromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/118.0"
	uaSafariIPhone  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaChromeAndroid = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaAndroidTablet = "Mozilla/5.0 (Linux; Android 13; SM-X200) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
	uaIPad          = "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edge/120.0.0.0"
)

func TestDetectDeviceType(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"chrome on windows", uaChromeWindows, "Desktop"},
		{"firefox on linux", uaFirefoxLinux, "Desktop"},
		{"iphone", uaSafariIPhone, "Mobile"},
		{"android phone", uaChromeAndroid, "Mobile"},
		{"android tablet without mobile token", uaAndroidTablet, "Tablet"},
		{"ipad", uaIPad, "Tablet"},
		{"empty", "", "Desktop"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDeviceType(tt.ua))
		})
	}
}

func TestDetectBrowser(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"chrome carries safari token", uaChromeWindows, "Chrome"},
		{"firefox", uaFirefoxLinux, "Firefox"},
		{"edge carries chrome token", uaEdgeWindows, "Edge"},
		{"safari on iphone", uaSafariIPhone, "Safari"},
		{"empty", "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectBrowser(tt.ua))
		})
	}
}

func TestDetectOS(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want string
	}{
		{"windows", uaChromeWindows, "Windows"},
		{"linux", uaFirefoxLinux, "Linux"},
		{"ios", uaSafariIPhone, "iOS"},
		{"android", uaChromeAndroid, "Android"},
		{"empty", "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectOS(tt.ua))
		})
	}
}

func TestSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/intake", nil)
	c.Request.Header.Set("User-Agent", uaChromeWindows)

	meta := Snapshot(c, "1920x1080")
	require.NotNil(t, meta)
	assert.Equal(t, uaChromeWindows, meta.UserAgent)
	assert.Equal(t, "Desktop", meta.DeviceType)
	assert.Equal(t, "Chrome", meta.Browser)
	assert.Equal(t, "Windows", meta.OS)
	assert.Equal(t, "Direct", meta.Referrer)
	assert.Equal(t, "1920x1080", meta.ScreenResolution)
}

func TestSnapshotDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/intake", nil)
	c.Request.Header.Set("Referer", "https://google.com/")

	meta := Snapshot(c, "")
	assert.Equal(t, "https://google.com/", meta.Referrer)
	assert.Equal(t, "Unknown", meta.ScreenResolution)
}
