// AngelaMos | 2026
// core_test.go

package core_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/socialdash/internal/config"
	"github.com/carterperez-dev/socialdash/internal/core"
)

func TestNullableUnmarshal(t *testing.T) {
	type patch struct {
		Logo core.Nullable[string] `json:"logo"`
	}

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
		wantValue string
	}{
		{name: "absent", body: `{}`},
		{name: "explicit null", body: `{"logo": null}`, wantSet: true},
		{
			name:      "value",
			body:      `{"logo": "a.png"}`,
			wantSet:   true,
			wantValid: true,
			wantValue: "a.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			var p patch
			c.Assert(json.Unmarshal([]byte(tt.body), &p), qt.IsNil)
			c.Assert(p.Logo.Set, qt.Equals, tt.wantSet)
			c.Assert(p.Logo.Valid, qt.Equals, tt.wantValid)
			c.Assert(p.Logo.Value, qt.Equals, tt.wantValue)
		})
	}
}

func TestNullablePtr(t *testing.T) {
	c := qt.New(t)

	c.Assert(core.Null[int64]().Ptr(), qt.IsNil)
	c.Assert(core.Nullable[int64]{}.Ptr(), qt.IsNil)
	c.Assert(*core.NewNullable[int64](3).Ptr(), qt.Equals, int64(3))

	out, err := json.Marshal(core.Null[string]())
	c.Assert(err, qt.IsNil)
	c.Assert(string(out), qt.Equals, "null")
}

func TestValidatorReportsJSONFieldNames(t *testing.T) {
	type request struct {
		Name    string                `json:"name"    validate:"required"`
		LogoURL core.Nullable[string] `json:"logoUrl" validate:"omitempty,max=5"`
		Tags    []string              `json:"tags"    validate:"dive,oneof=a b"`
	}

	c := qt.New(t)
	v := core.NewValidator()

	err := v.Struct(request{
		LogoURL: core.NewNullable("too-long"),
		Tags:    []string{"a", "c"},
	})
	c.Assert(err, qt.IsNotNil)
	c.Assert(core.FormatValidationError(err), qt.DeepEquals, map[string]string{
		"name":    "required",
		"logoUrl": "max=5",
		"tags[1]": "oneof=a b",
	})

	c.Assert(v.Struct(request{Name: "ok", LogoURL: core.Null[string]()}), qt.IsNil)
}

func TestPasswordHashing(t *testing.T) {
	c := qt.New(t)

	hash, err := core.HashPassword("password")
	c.Assert(err, qt.IsNil)
	c.Assert(hash, qt.Not(qt.Equals), "password")

	ok, err := core.VerifyPassword("password", hash)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsTrue)

	ok, err = core.VerifyPassword("wrong", hash)
	c.Assert(err, qt.IsNil)
	c.Assert(ok, qt.IsFalse)

	_, err = core.VerifyPassword("password", "not-a-hash")
	c.Assert(err, qt.ErrorIs, core.ErrInvalidHash)
}

func TestStorageError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("get post: %w", core.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   core.CodeNotFound,
			wantMsg:    "post not found",
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("create user: %w", core.ErrDuplicateKey),
			wantStatus: http.StatusConflict,
			wantCode:   core.CodeConflict,
			wantMsg:    "post already exists",
		},
		{
			name:       "invalid input",
			err:        fmt.Errorf("create post: %w", core.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantCode:   core.CodeBadRequest,
			wantMsg:    "create post: invalid input",
		},
		{
			name:       "unexpected",
			err:        fmt.Errorf("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   core.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			rec := httptest.NewRecorder()
			core.StorageError(rec, tt.err, "post")
			c.Assert(rec.Code, qt.Equals, tt.wantStatus)

			var body core.ErrorResponse
			c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
			c.Assert(body.Success, qt.IsFalse)
			c.Assert(body.Error.Code, qt.Equals, tt.wantCode)
			if tt.wantMsg != "" {
				c.Assert(body.Error.Message, qt.Equals, tt.wantMsg)
			}
		})
	}
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		path   string
		wantID int64
		wantOK bool
	}{
		{path: "/items/12", wantID: 12, wantOK: true},
		{path: "/items/0"},
		{path: "/items/-3"},
		{path: "/items/abc"},
		{path: "/items/99999999999999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := qt.New(t)

			var (
				gotID int64
				gotOK bool
			)
			r := chi.NewRouter()
			r.Get("/items/{id}", func(_ http.ResponseWriter, r *http.Request) {
				gotID, gotOK = core.IDParam(r, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			c.Assert(gotOK, qt.Equals, tt.wantOK)
			c.Assert(gotID, qt.Equals, tt.wantID)
		})
	}
}

func TestRedisNotConfigured(t *testing.T) {
	c := qt.New(t)

	r, err := core.NewRedis(context.Background(), config.RedisConfig{})
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.IsNil)

	c.Assert(r.Client(), qt.IsNil)
	c.Assert(r.Checker() == nil, qt.IsTrue)
	c.Assert(r.Close(), qt.IsNil)
}

func TestRedisBadURL(t *testing.T) {
	c := qt.New(t)

	r, err := core.NewRedis(context.Background(), config.RedisConfig{URL: "mysql://nope"})
	c.Assert(err, qt.ErrorMatches, "parse redis url: .*")
	c.Assert(r, qt.IsNil)
}

func TestTelemetryDisabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.OtelConfig
	}{
		{"off", config.OtelConfig{ServiceName: "socialdash", Endpoint: "localhost:4317"}},
		{"no endpoint", config.OtelConfig{ServiceName: "socialdash", Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			tel, err := core.NewTelemetry(context.Background(), tt.cfg, config.AppConfig{})
			c.Assert(err, qt.IsNil)
			c.Assert(tel, qt.IsNil)

			c.Assert(tel.Tracer("socialdash"), qt.Not(qt.IsNil))
			c.Assert(tel.Shutdown(context.Background()), qt.IsNil)
		})
	}
}

func TestTraceIDFromContextWithoutSpan(t *testing.T) {
	c := qt.New(t)

	c.Assert(core.TraceIDFromContext(context.Background()), qt.Equals, "")

	ctx, span := (*core.Telemetry)(nil).Tracer("socialdash").Start(context.Background(), "op")
	defer span.End()
	c.Assert(core.TraceIDFromContext(ctx), qt.Equals, "")
}
