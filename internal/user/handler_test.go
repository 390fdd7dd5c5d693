// AngelaMos | 2026
// handler_test.go

package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
	"github.com/carterperez-dev/socialdash/internal/storage"
	"github.com/carterperez-dev/socialdash/internal/user"
)

func newRouter(c *qt.C, userID int64) http.Handler {
	store := storage.NewMemoryStore()
	business := "Small Business"
	_, err := store.CreateUser(context.Background(), storage.NewUser{
		Username:     "demo",
		Password:     "$argon2id$secret",
		Name:         "Jane Doe",
		BusinessName: &business,
		Email:        "jane@example.com",
	})
	c.Assert(err, qt.IsNil)

	r := chi.NewRouter()
	r.Use(middleware.DemoUser(userID))
	user.NewHandler(user.NewService(store)).RegisterRoutes(r)
	return r
}

func TestGetCurrentUser(t *testing.T) {
	c := qt.New(t)

	rec := httptest.NewRecorder()
	newRouter(c, 1).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user", nil))
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	var body map[string]any
	c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
	c.Assert(body["username"], qt.Equals, "demo")
	c.Assert(body["businessName"], qt.Equals, "Small Business")
	c.Assert(body["id"], qt.Equals, float64(1))

	_, hasPassword := body["password"]
	c.Assert(hasPassword, qt.IsFalse)
}

func TestGetCurrentUserMissing(t *testing.T) {
	c := qt.New(t)

	rec := httptest.NewRecorder()
	newRouter(c, 42).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user", nil))
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)

	var body core.ErrorResponse
	c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
	c.Assert(body.Error.Code, qt.Equals, core.CodeNotFound)
	c.Assert(body.Error.Message, qt.Equals, "user not found")
}
