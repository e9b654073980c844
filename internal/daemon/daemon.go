package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gofrs/flock"

	"registrar/internal/catalog"
	"registrar/internal/config"
	"registrar/internal/logging"
	"registrar/internal/store"
)

// Daemon holds the shared store handle and the catalog access modules, and
// enforces single-instance execution through a lock file.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store

	locations *catalog.Locations
	subjects  *catalog.Subjects
	lecturers *catalog.Lecturers
	schedules *catalog.Schedules
	sessions  *catalog.Sessions
	students  *catalog.Students

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
}

// Status represents daemon runtime information.
type Status struct {
	AppName    string
	AppVersion string
	Connected  bool
	DBPath     string
	LockPath   string
	PID        int
}

// New constructs a daemon around an already-opened store. The store handle is
// injected rather than created here so tests can supply their own.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := filepath.Join(cfg.Paths.DataDir, "registrard.lock")
	return &Daemon{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		locations: catalog.NewLocations(st),
		subjects:  catalog.NewSubjects(st),
		lecturers: catalog.NewLecturers(st),
		schedules: catalog.NewSchedules(st),
		sessions:  catalog.NewSessions(st),
		students:  catalog.NewStudents(st),
		lockPath:  lockPath,
		lock:      flock.New(lockPath),
	}, nil
}

// Start acquires the single-instance lock.
func (d *Daemon) Start() error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another registrar daemon instance is already running")
	}

	d.running.Store(true)
	d.logger.Info("registrar daemon started",
		logging.String("lock", d.lockPath),
		logging.String("db", d.store.Path()))
	return nil
}

// Stop releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("registrar daemon stopped")
}

// Close stops the daemon and closes the store.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Locations returns the building and room access module.
func (d *Daemon) Locations() *catalog.Locations { return d.locations }

// Subjects returns the subject access module.
func (d *Daemon) Subjects() *catalog.Subjects { return d.subjects }

// Lecturers returns the lecturer access module.
func (d *Daemon) Lecturers() *catalog.Lecturers { return d.lecturers }

// Schedules returns the working-week template access module.
func (d *Daemon) Schedules() *catalog.Schedules { return d.schedules }

// Sessions returns the session and tag access module.
func (d *Daemon) Sessions() *catalog.Sessions { return d.sessions }

// Students returns the student and subgroup access module.
func (d *Daemon) Students() *catalog.Students { return d.students }

// RequestTimeout reports the per-request deadline configured for catalog calls.
func (d *Daemon) RequestTimeout() time.Duration {
	return d.cfg.RequestTimeout()
}

// LogPath returns the path to the daemon log file.
func (d *Daemon) LogPath() string {
	return filepath.Join(d.cfg.Paths.LogDir, logging.LogFileName)
}

// Status returns the current daemon status. Connected reflects a live ping,
// not just whether the handle was opened once.
func (d *Daemon) Status(ctx context.Context) Status {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	connected := d.store != nil && d.store.Ping(pingCtx) == nil
	return Status{
		AppName:    d.cfg.App.Name,
		AppVersion: d.cfg.App.Version,
		Connected:  connected,
		DBPath:     d.store.Path(),
		LockPath:   d.lockPath,
		PID:        os.Getpid(),
	}
}

// StoreHealth returns detailed catalog database diagnostics.
func (d *Daemon) StoreHealth(ctx context.Context) (store.Health, error) {
	if d.store == nil {
		return store.Health{}, errors.New("catalog store unavailable")
	}
	return d.store.CheckHealth(ctx)
}
