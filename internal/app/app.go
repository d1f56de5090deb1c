// Package app assembles the organizer from its configuration: logger,
// persistence, store and API.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"organizer/internal/api"
	"organizer/internal/config"
	"organizer/internal/errors"
	"organizer/internal/logging"
	"organizer/internal/repository/sqlite"
	"organizer/internal/store"
	"organizer/internal/validation"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
)

// App holds the application state and dependencies
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Repo   sqlite.Repository
	Store  *store.Store
	API    api.API

	lockFile *flock.Flock
	closeLog func() error
}

// Options tune how the application is assembled
type Options struct {
	Env    config.Environment
	Stderr io.Writer
	Now    func() time.Time
}

// New builds the application described by cfg. In production the data
// directory is locked so only one process writes the snapshot.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, errors.NewInvalidInputError("timezone", cfg.Calendar.Timezone, err.Error())
	}

	logger, closeLog, err := logging.New(cfg.Logging, cfg.Application.Verbose, opts.Stderr)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, Logger: logger, closeLog: closeLog}

	if opts.Env == config.Production {
		if err := os.MkdirAll(cfg.Storage.Dir, os.FileMode(cfg.Storage.DirPermissions)); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		if err := a.acquireLock(); err != nil {
			a.Close()
			return nil, err
		}
	}

	repo, err := config.CreateRepository(cfg, opts.Env)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repo = repo

	st, err := store.Open(ctx, repo, cfg.Storage.Key,
		store.WithLocation(loc),
		store.WithLogger(logger),
		store.WithWriteTimeout(cfg.Storage.WriteTimeout),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Store = st

	a.API = api.New(st,
		api.WithClock(opts.Now),
		api.WithWeekStart(cfg.WeekStartDay()),
		api.WithProjectionDays(cfg.Calendar.ProjectionDays),
		api.WithLimits(validation.Limits{
			TextMaxLength:      cfg.Validation.TextMaxLength,
			NameMaxLength:      cfg.Validation.NameMaxLength,
			ExercisesMaxLength: validation.DefaultLimits().ExercisesMaxLength,
		}),
	)

	logger.Debug().
		Str("env", string(opts.Env)).
		Str("key", st.Key()).
		Msg("organizer ready")
	return a, nil
}

// acquireLock takes an exclusive lock on the data directory
func (a *App) acquireLock() error {
	lockPath := a.Config.GetLockPath()
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.NewLockedError(a.Config.Storage.Dir)
	}
	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Repo != nil {
		if err := a.Repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if a.closeLog != nil {
		if err := a.closeLog(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
