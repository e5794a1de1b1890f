package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bmi-tracker/internal/config"
)

func rateContext(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.0.2.10:1234"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/bmi/:user_id")
	return c
}

func TestBuildRateKeyStrategies(t *testing.T) {
	c := rateContext(http.MethodGet, "/api/bmi/alice")

	ip := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip"}, c)
	if ip != "rl:ip:192.0.2.10" {
		t.Fatalf("ip key = %q", ip)
	}
	route := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "route"}, c)
	if route != "rl:route:GET /api/bmi/:user_id" {
		t.Fatalf("route key = %q", route)
	}
	both := buildRateKey(config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_route"}, c)
	if both != "rl:ip:192.0.2.10:route:GET /api/bmi/:user_id" {
		t.Fatalf("ip_route key = %q", both)
	}
}

func TestAsInt64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want int64
	}{
		{int64(5), 5},
		{int(3), 3},
		{float64(7), 7},
		{"11", 11},
		{"junk", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := asInt64(tc.in); got != tc.want {
			t.Fatalf("asInt64(%#v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDisabledLimiterIsPassThrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := h(rateContext(http.MethodPost, "/api/bmi")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatalf("next handler not invoked")
	}
}
