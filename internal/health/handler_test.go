// AngelaMos | 2026
// handler_test.go

package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/health"
)

var _ health.Checker = (*core.Redis)(nil)

type stubChecker struct {
	err error
}

func (s stubChecker) Ping(context.Context) error {
	return s.err
}

func serve(h *health.Handler, path string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		store      health.Checker
		redis      health.Checker
		wantStatus int
		wantChecks int
		wantBody   string
	}{
		{
			name:       "storage only",
			store:      stubChecker{},
			wantStatus: http.StatusOK,
			wantChecks: 1,
			wantBody:   "ok",
		},
		{
			name:       "redis not configured",
			store:      stubChecker{},
			redis:      (*core.Redis)(nil).Checker(),
			wantStatus: http.StatusOK,
			wantChecks: 1,
			wantBody:   "ok",
		},
		{
			name:       "storage and redis",
			store:      stubChecker{},
			redis:      stubChecker{},
			wantStatus: http.StatusOK,
			wantChecks: 2,
			wantBody:   "ok",
		},
		{
			name:       "redis down",
			store:      stubChecker{},
			redis:      stubChecker{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantChecks: 2,
			wantBody:   "degraded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			rec := serve(health.NewHandler(tt.store, tt.redis), "/readyz")
			c.Assert(rec.Code, qt.Equals, tt.wantStatus)

			var body health.ReadinessResponse
			c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
			c.Assert(body.Status, qt.Equals, tt.wantBody)
			c.Assert(body.Checks, qt.HasLen, tt.wantChecks)
			c.Assert(body.Checks[0].Name, qt.Equals, "storage")
		})
	}
}

func TestLivenessDuringShutdown(t *testing.T) {
	c := qt.New(t)

	h := health.NewHandler(stubChecker{}, nil)
	c.Assert(serve(h, "/healthz").Code, qt.Equals, http.StatusOK)

	h.SetShutdown(true)
	c.Assert(serve(h, "/livez").Code, qt.Equals, http.StatusServiceUnavailable)
	c.Assert(serve(h, "/readyz").Code, qt.Equals, http.StatusServiceUnavailable)
}
