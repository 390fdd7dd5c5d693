// AngelaMos | 2026
// config_test.go

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/carterperez-dev/socialdash/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)

	cfg, err := config.Load("")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Storage.Driver, qt.Equals, config.DriverMemory)
	c.Assert(cfg.Storage.SeedDemo, qt.IsTrue)
	c.Assert(cfg.App.DemoUserID, qt.Equals, int64(1))
	c.Assert(cfg.Server.Address(), qt.Equals, "0.0.0.0:5000")
	c.Assert(cfg.RateLimit.Window, qt.Equals, time.Minute)
	c.Assert(cfg.Redis.Enabled(), qt.IsFalse)
	c.Assert(cfg.Location(), qt.Equals, time.UTC)
	c.Assert(cfg.IsProduction(), qt.IsFalse)
}

func TestLoadFileThenEnv(t *testing.T) {
	c := qt.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
app:
  timezone: Europe/Berlin
server:
  port: 8080
storage:
  driver: sqlite
  sqlite_path: /tmp/socialdash-test.db
rate_limit:
  requests: 30
`), 0o600)
	c.Assert(err, qt.IsNil)

	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RATE_LIMIT_PER_ENDPOINT", "true")

	cfg, err := config.Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Storage.Driver, qt.Equals, config.DriverSQLite)
	c.Assert(cfg.Server.Port, qt.Equals, 9090)
	c.Assert(cfg.RateLimit.Requests, qt.Equals, 30)
	c.Assert(cfg.RateLimit.PerEndpoint, qt.IsTrue)
	c.Assert(cfg.Redis.Enabled(), qt.IsTrue)
	c.Assert(cfg.Location().String(), qt.Equals, "Europe/Berlin")
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "postgres without url",
			env:  map[string]string{"STORAGE_DRIVER": "postgres"},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"STORAGE_DRIVER": "mongodb"},
		},
		{
			name: "unknown timezone",
			env:  map[string]string{"CALENDAR_TIMEZONE": "Mars/Olympus"},
		},
		{
			name: "non-positive demo user",
			env:  map[string]string{"DEMO_USER_ID": "0"},
		},
		{
			name: "rate limit without window",
			env:  map[string]string{"RATE_LIMIT_WINDOW": "0s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load("")
			c.Assert(err, qt.IsNotNil)
		})
	}
}
