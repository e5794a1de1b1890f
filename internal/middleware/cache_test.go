package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bmi-tracker/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`[{"id":1}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	status, gotHdr, gotBody, ok := decodePayload(payload)
	if !ok {
		t.Fatalf("decode failed")
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if gotHdr.Get("Content-Type") != "application/json" {
		t.Fatalf("header lost: %v", gotHdr)
	}
	if string(gotBody) != string(body) {
		t.Fatalf("body = %q", gotBody)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	if _, _, _, ok := decodePayload([]byte("short")); ok {
		t.Fatalf("short payload must not decode")
	}
	if _, _, _, ok := decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 99, 1, 2}); ok {
		t.Fatalf("truncated header must not decode")
	}
}

func newGetContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

// Different users must never share a cache entry.
func TestCacheKeySeparatesUsers(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	a := cacheKeyFrom(cfg, newGetContext("/api/bmi/alice"))
	b := cacheKeyFrom(cfg, newGetContext("/api/bmi/bob"))
	if a == b {
		t.Fatalf("keys collide: %q", a)
	}
	if !strings.HasPrefix(a, "cache:") {
		t.Fatalf("prefix missing: %q", a)
	}
}

func TestCacheKeyStable(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "method_route_query"}
	a := cacheKeyFrom(cfg, newGetContext("/api/bmi/alice?x=1"))
	b := cacheKeyFrom(cfg, newGetContext("/api/bmi/alice?x=1"))
	if a != b {
		t.Fatalf("same request produced different keys: %q vs %q", a, b)
	}
}

func TestNilRedisIsPassThrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	if err := h(newGetContext("/api/bmi/alice")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Fatalf("next handler not invoked")
	}
}
