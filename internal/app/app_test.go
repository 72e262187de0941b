package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRepositoriesSQLite(t *testing.T) {
	repos, err := OpenRepositories(context.Background(), config.DatabaseConfig{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "portal.db"),
	}, "")
	require.NoError(t, err)
	defer repos.Close()

	require.NotNil(t, repos.SQLite)

	now := func() time.Time { return time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC) }
	svcs, err := NewServices(repos, nil, config.TimelineConfig{StartHour: 9, EndHour: 24, MinimumMinutes: 480}, now)
	require.NoError(t, err)

	month, err := svcs.Calendar.GetMonth(context.Background(), calendar.MonthRequest{
		EmployeeID: "emp-1",
		Year:       2024,
		Month:      6,
		Location:   time.UTC,
	})
	require.NoError(t, err)
	assert.Len(t, month.Cells, 42)
}

func TestOpenRepositoriesUnknownDriver(t *testing.T) {
	_, err := OpenRepositories(context.Background(), config.DatabaseConfig{Driver: "mysql"}, "")
	assert.Error(t, err)
}

func TestNewServicesRejectsBadWindow(t *testing.T) {
	_, err := NewServices(&Repositories{}, nil, config.TimelineConfig{StartHour: 20, EndHour: 9}, nil)
	assert.Error(t, err)
}
