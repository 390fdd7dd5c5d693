// AngelaMos | 2026
// middleware_test.go

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/carterperez-dev/socialdash/internal/config"
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestDemoUser(t *testing.T) {
	c := qt.New(t)

	var seen int64
	h := middleware.DemoUser(7)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.GetUserID(r.Context())
		},
	))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	c.Assert(seen, qt.Equals, int64(7))

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	c.Assert(middleware.GetUserID(bare.Context()), qt.Equals, int64(0))
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent", incoming: "", keep: false},
		{name: "propagated when present", incoming: "abc-123", keep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			var ctxID string
			h := middleware.RequestID(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					ctxID = middleware.GetRequestID(r.Context())
				},
			))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.RequestIDHeader)
			c.Assert(got, qt.Not(qt.Equals), "")
			c.Assert(ctxID, qt.Equals, got)
			if tt.keep {
				c.Assert(got, qt.Equals, tt.incoming)
			}
		})
	}
}

func TestRateLimiterLocalFallback(t *testing.T) {
	c := qt.New(t)

	rl := middleware.NewRateLimiter(nil, middleware.RateLimitConfig{
		Limit: middleware.PerWindow(1, 2, time.Minute),
	})
	h := rl.Handler(okHandler)

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	c.Assert(do().Code, qt.Equals, http.StatusOK)
	c.Assert(do().Code, qt.Equals, http.StatusOK)

	limited := do()
	c.Assert(limited.Code, qt.Equals, http.StatusTooManyRequests)
	c.Assert(limited.Header().Get("Retry-After"), qt.Not(qt.Equals), "")

	var body core.ErrorResponse
	c.Assert(json.NewDecoder(limited.Body).Decode(&body), qt.IsNil)
	c.Assert(body.Success, qt.IsFalse)
	c.Assert(body.Error.Code, qt.Equals, core.CodeRateLimited)
}

func TestKeyByUser(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1:1234"
	c.Assert(middleware.KeyByUser(req), qt.Equals, "ratelimit:ip:198.51.100.1")

	req = req.WithContext(middleware.WithUserID(req.Context(), 3))
	c.Assert(middleware.KeyByUser(req), qt.Equals, "ratelimit:user:3")
}

func TestCORS(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	h := middleware.CORS(cfg)(okHandler)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		c := qt.New(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "POST")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusNoContent)
		c.Assert(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "http://localhost:5173")
		c.Assert(rec.Header().Get("Access-Control-Allow-Methods"), qt.Equals, "GET, POST")
		c.Assert(rec.Header().Get("Access-Control-Allow-Credentials"), qt.Equals, "true")
	})

	t.Run("unknown origin gets no grant", func(t *testing.T) {
		c := qt.New(t)

		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		c.Assert(rec.Code, qt.Equals, http.StatusOK)
		c.Assert(rec.Header().Get("Access-Control-Allow-Origin"), qt.Equals, "")
	})
}

func TestSecurityHeaders(t *testing.T) {
	c := qt.New(t)

	rec := httptest.NewRecorder()
	middleware.SecurityHeaders(true)(okHandler).ServeHTTP(
		rec,
		httptest.NewRequest(http.MethodGet, "/", nil),
	)

	c.Assert(rec.Header().Get("X-Content-Type-Options"), qt.Equals, "nosniff")
	c.Assert(rec.Header().Get("Strict-Transport-Security"), qt.Not(qt.Equals), "")

	rec = httptest.NewRecorder()
	middleware.SecurityHeaders(false)(okHandler).ServeHTTP(
		rec,
		httptest.NewRequest(http.MethodGet, "/", nil),
	)
	c.Assert(rec.Header().Get("Strict-Transport-Security"), qt.Equals, "")
}

func TestKeyByUserAndEndpoint(t *testing.T) {
	c := qt.New(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/42", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))

	c.Assert(
		middleware.KeyByUserAndEndpoint(req),
		qt.Equals,
		"ratelimit:user:1:endpoint:/api/posts/{id}",
	)
}
