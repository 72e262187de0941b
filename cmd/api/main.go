package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/app"
	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	calendarService "github.com/cmlabs-hris/hris-portal-go/internal/service/calendar"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := parseLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	loc, err := cfg.App.Location()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := app.OpenRepositories(ctx, cfg.Database, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer repos.Close()

	holidayCache := calendarService.NewHolidayCache(repos.Holidays, time.Now, loc)
	if err := holidayCache.Refresh(ctx); err != nil {
		// Reads fall through to the repository until the next refresh.
		slog.Warn("Initial holiday cache refresh failed", "error", err)
	}

	services, err := app.NewServices(repos, holidayCache, cfg.Timeline, time.Now)
	if err != nil {
		return err
	}

	scheduler := cron.NewScheduler()
	cron.NewHolidayJobs(holidayCache, cfg.Cron.HolidayRefreshInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	router := appHTTP.NewRouter(JWTService, appHTTP.RouterOptions{
		FrontendOrigin: cfg.App.FrontendOrigin,
		Env:            cfg.App.Env,
		LogLevel:       level,
	}, appHTTP.Handlers{
		Calendar:       appHTTP.NewCalendarHandler(services.Calendar, loc, time.Now),
		Timeline:       appHTTP.NewTimelineHandler(services.Timeline, loc),
		Leave:          appHTTP.NewLeaveHandler(services.Leave, loc),
		Regularization: appHTTP.NewRegularizationHandler(services.Regularization, loc),
		Project:        appHTTP.NewProjectHandler(services.Project),
		TimeLog:        appHTTP.NewTimeLogHandler(services.TimeLog, loc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "driver", cfg.Database.Driver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
