package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stayvista/stayvista-api/internal/http/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_NilClientPassesThrough(t *testing.T) {
	limiter := middleware.NewRateLimiter(nil, middleware.RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
	})

	handler := limiter.Middleware()(okHandler())

	// Without Redis the limiter never blocks, no matter how many calls.
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/jwt", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRateLimiter_SkipFunc(t *testing.T) {
	limiter := middleware.NewRateLimiter(nil, middleware.RateLimitConfig{
		Requests: 1,
		Window:   time.Minute,
		SkipFunc: func(r *http.Request) bool { return r.URL.Path == "/healthz" },
	})

	handler := limiter.Middleware()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 for skipped path, got %d", rec.Code)
	}
}

func TestClientIPKeyFunc(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	keys := middleware.ClientIPKeyFunc(req)
	if len(keys) != 1 || keys[0] != "ip:203.0.113.7" {
		t.Fatalf("Unexpected keys: %v", keys)
	}
}
