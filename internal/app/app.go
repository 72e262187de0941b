// Package app wires repositories and services from configuration. The API
// server and portalctl share it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/sqlite"
	calendarService "github.com/cmlabs-hris/hris-portal-go/internal/service/calendar"
	leaveService "github.com/cmlabs-hris/hris-portal-go/internal/service/leave"
	projectService "github.com/cmlabs-hris/hris-portal-go/internal/service/project"
	regularizationService "github.com/cmlabs-hris/hris-portal-go/internal/service/regularization"
	timelineService "github.com/cmlabs-hris/hris-portal-go/internal/service/timeline"
	timelogService "github.com/cmlabs-hris/hris-portal-go/internal/service/timelog"
)

type Repositories struct {
	Holidays   calendar.HolidayRepository
	Leaves     leave.LeaveRepository
	Balances   leave.BalanceRepository
	Attendance attendance.AttendanceRepository
	Sessions   attendance.SessionRepository
	TimeLogs   timelog.TimeLogRepository
	Projects   project.ProjectRepository

	// SQLite is set when the sqlite driver is configured.
	SQLite *sqlite.Store
	close  func()
}

func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// OpenRepositories connects to the configured database. Postgres schemas
// are migrated on open; sqlite migrates itself.
func OpenRepositories(ctx context.Context, cfg config.DatabaseConfig, dsn string) (*Repositories, error) {
	switch cfg.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{
			MaxConns: cfg.MaxConns,
			MinConns: cfg.MinConns,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		slog.Info("Connected to PostgreSQL", "host", cfg.Host, "database", cfg.Name)

		return &Repositories{
			Holidays:   postgresql.NewHolidayRepository(db),
			Leaves:     postgresql.NewLeaveRepository(db),
			Balances:   postgresql.NewBalanceRepository(db),
			Attendance: postgresql.NewAttendanceRepository(db),
			Sessions:   postgresql.NewSessionRepository(db),
			TimeLogs:   postgresql.NewTimeLogRepository(db),
			Projects:   postgresql.NewProjectRepository(db),
			close:      db.Close,
		}, nil

	case "sqlite":
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info("Opened SQLite store", "path", cfg.SQLitePath)

		return &Repositories{
			Holidays:   store.Holidays(),
			Leaves:     store.Leaves(),
			Balances:   store.Balances(),
			Attendance: store.Attendance(),
			Sessions:   store.Sessions(),
			TimeLogs:   store.TimeLogs(),
			Projects:   store.Projects(),
			SQLite:     store,
			close: func() {
				if err := store.Close(); err != nil {
					slog.Error("Failed to close SQLite store", "error", err)
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

type Services struct {
	Calendar       calendar.CalendarService
	Timeline       timeline.TimelineService
	Leave          leave.LeaveService
	Regularization regularization.RegularizationService
	Project        project.ProjectService
	TimeLog        timelog.TimeLogService
}

// NewServices builds every service over repos. holidays overrides
// repos.Holidays when non-nil, so callers can put a cache in front.
func NewServices(repos *Repositories, holidays calendar.HolidayRepository, tl config.TimelineConfig, now func() time.Time) (*Services, error) {
	if holidays == nil {
		holidays = repos.Holidays
	}

	timelineSvc, err := timelineService.NewTimelineService(
		repos.Sessions,
		repos.Attendance,
		holidays,
		timeline.Window{StartHour: tl.StartHour, EndHour: tl.EndHour},
		tl.MinimumMinutes,
		now,
	)
	if err != nil {
		return nil, err
	}

	return &Services{
		Calendar:       calendarService.NewCalendarService(holidays, repos.Leaves, repos.Attendance, now),
		Timeline:       timelineSvc,
		Leave:          leaveService.NewLeaveService(repos.Balances, now),
		Regularization: regularizationService.NewRegularizationService(repos.TimeLogs, now),
		Project:        projectService.NewProjectService(repos.Projects),
		TimeLog:        timelogService.NewTimeLogService(repos.TimeLogs, now),
	}, nil
}
