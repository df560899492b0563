package middleware

import "testing"

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"channel stats", "/api/channels/UCuAXFkgsw1L7xaCfnd5JJOw/stats", "/api/channels/:channelId/stats"},
		{"channel videos", "/api/channels/UCuAXFkgsw1L7xaCfnd5JJOw/videos", "/api/channels/:channelId/videos"},
		{"monthly report", "/api/reports/monthly/UCuAXFkgsw1L7xaCfnd5JJOw", "/api/reports/monthly/:channelId"},
		{"static path untouched", "/api/compare/top", "/api/compare/top"},
		{"health untouched", "/health/ready", "/health/ready"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.path); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHashIPForLog(t *testing.T) {
	a := hashIPForLog("203.0.113.7")
	b := hashIPForLog("203.0.113.7")
	c := hashIPForLog("203.0.113.8")

	if a != b {
		t.Error("same IP must hash to the same value")
	}
	if a == c {
		t.Error("different IPs must not collide")
	}
	if len(a) != 12 {
		t.Errorf("hash length = %d, want 12", len(a))
	}
	if a == "203.0.113.7" {
		t.Error("raw IP must never appear in the hash")
	}
}
