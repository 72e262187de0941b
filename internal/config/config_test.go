package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 9, cfg.Timeline.StartHour)
	assert.Equal(t, 24, cfg.Timeline.EndHour)
	assert.Equal(t, 480, cfg.Timeline.MinimumMinutes)
	assert.Equal(t, 6*time.Hour, cfg.Cron.HolidayRefreshInterval)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET_KEY": ""}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql", "JWT_SECRET_KEY": "s"}},
		{"postgres needs password", map[string]string{"DB_DRIVER": "postgres", "DB_PASSWORD": "", "JWT_SECRET_KEY": "s"}},
		{"inverted window", map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET_KEY": "s", "TIMELINE_START_HOUR": "18", "TIMELINE_END_HOUR": "9"}},
		{"bad port", map[string]string{"APP_PORT": "http"}},
		{"bad interval", map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET_KEY": "s", "HOLIDAY_REFRESH_INTERVAL": "often"}},
		{"bad zone", map[string]string{"DB_DRIVER": "sqlite", "JWT_SECRET_KEY": "s", "APP_TIME_ZONE": "Mars/Olympus"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5433, Name: "portal", SSLMode: "require"}}
	assert.Equal(t, "postgres://u:p@db:5433/portal?sslmode=require", cfg.DatabaseURL())
}

func TestLocation(t *testing.T) {
	loc, err := AppConfig{DefaultTimeZone: "Asia/Kolkata"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	loc, err = AppConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadCLIWithoutSecret(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadCLI()
	require.NoError(t, err)
	assert.Empty(t, cfg.JWT.Secret)
}
