package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hirescreen/internal/errors"
)

func TestRateLimiterAllowsBurst(t *testing.T) {
	logger := errors.NewLogger(0)
	limiter := NewRateLimiter(60, time.Minute, 3, logger)
	defer limiter.Close()

	for i := range 3 {
		if !limiter.Allow("client-a") {
			t.Fatalf("request %d within burst capacity was denied", i+1)
		}
	}

	if limiter.Allow("client-a") {
		t.Error("request beyond burst capacity was allowed")
	}

	// A different key gets its own bucket
	if !limiter.Allow("client-b") {
		t.Error("independent key was denied")
	}
}

func TestRateLimiterStats(t *testing.T) {
	logger := errors.NewLogger(0)
	limiter := NewRateLimiter(120, time.Minute, 10, logger)
	defer limiter.Close()

	limiter.Allow("key-1")
	limiter.Allow("key-2")

	stats := limiter.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("active_limiters = %v, want 2", stats["active_limiters"])
	}
	if stats["rate_per_minute"] != 120.0 {
		t.Errorf("rate_per_minute = %v, want 120", stats["rate_per_minute"])
	}
	if stats["burst_capacity"] != 10 {
		t.Errorf("burst_capacity = %v, want 10", stats["burst_capacity"])
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	logger := errors.NewLogger(0)
	limiter := NewRateLimiter(60, time.Minute, 5, logger)
	defer limiter.Close()

	limiter.Allow("stale-key")
	limiter.cleanup(0)

	limiter.mu.Lock()
	remaining := len(limiter.limiters)
	limiter.mu.Unlock()

	if remaining != 0 {
		t.Errorf("expected stale limiters to be evicted, %d remain", remaining)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "10.0.0.1:54321",
			want:       "10.0.0.1",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9"},
			want:       "203.0.113.9",
		},
		{
			name:       "x-forwarded-for list",
			remoteAddr: "10.0.0.1:54321",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.2"},
			want:       "203.0.113.9",
		},
		{
			name:       "x-forwarded-for invalid falls through to x-real-ip",
			remoteAddr: "10.0.0.1:54321",
			headers: map[string]string{
				"X-Forwarded-For": "not-an-ip",
				"X-Real-IP":       "198.51.100.4",
			},
			want: "198.51.100.4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			if got := getClientIP(r); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetRateLimitKey(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:54321"

	if got := getRateLimitKey(r, false, true); got != "ip:10.0.0.1" {
		t.Errorf("by IP key = %q, want ip:10.0.0.1", got)
	}

	r.Header.Set("X-API-Key", "secret-key")
	if got := getRateLimitKey(r, true, true); got != "api:secret-key" {
		t.Errorf("by API key = %q, want api:secret-key", got)
	}

	r.Header.Del("X-API-Key")
	r.Header.Set("Authorization", "Bearer bearer-key")
	if got := getRateLimitKey(r, true, false); got != "api:bearer-key" {
		t.Errorf("bearer key = %q, want api:bearer-key", got)
	}

	r.Header.Del("Authorization")
	if got := getRateLimitKey(r, true, false); got != "" {
		t.Errorf("no key sources = %q, want empty", got)
	}
}

func TestMaskAPIKey(t *testing.T) {
	if got := maskAPIKey("short"); got != "****" {
		t.Errorf("short key mask = %q", got)
	}
	if got := maskAPIKey("abcdefgh12345678"); got != "abcdefgh****" {
		t.Errorf("long key mask = %q", got)
	}
}
