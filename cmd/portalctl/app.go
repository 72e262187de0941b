package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/app"
	"github.com/cmlabs-hris/hris-portal-go/internal/config"
)

// cliApp holds what the commands share. The database is opened on first use
// so that commands like help never touch it.
type cliApp struct {
	out io.Writer
	now func() time.Time

	// Flag overrides for the matching environment variables.
	driver     string
	sqlitePath string
	tz         string

	cfg      *config.Config
	repos    *app.Repositories
	services *app.Services
}

func (a *cliApp) loadConfig() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	overrides := map[string]string{
		"DB_DRIVER":     a.driver,
		"SQLITE_PATH":   a.sqlitePath,
		"APP_TIME_ZONE": a.tz,
	}
	for key, value := range overrides {
		if value != "" {
			if err := os.Setenv(key, value); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := config.LoadCLI()
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *cliApp) open(ctx context.Context) error {
	if a.services != nil {
		return nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	repos, err := app.OpenRepositories(ctx, cfg.Database, cfg.DatabaseURL())
	if err != nil {
		return err
	}
	services, err := app.NewServices(repos, nil, cfg.Timeline, a.now)
	if err != nil {
		repos.Close()
		return err
	}

	a.repos = repos
	a.services = services
	return nil
}

func (a *cliApp) close() {
	if a.repos != nil {
		a.repos.Close()
		a.repos = nil
		a.services = nil
	}
}

func (a *cliApp) location() (*time.Location, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.App.Location()
}

func (a *cliApp) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
