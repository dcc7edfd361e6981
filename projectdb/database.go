// Package projectdb indexes the generated sound bank metadata of a project
// and serves lookups to the cooker.
package projectdb

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/LegacyCodeHQ/soundcook/cooked"
)

// Database holds the current snapshot of one platform's metadata.
// Lookups run under a read lock; Rebuild swaps the snapshot under the
// write lock.
type Database struct {
	dir      string
	platform string
	logger   *slog.Logger
	workers  int

	mu   sync.RWMutex
	data *PlatformData
}

// Option configures a Database.
type Option func(*Database)

// WithLogger sets the logger used while building snapshots.
func WithLogger(logger *slog.Logger) Option {
	return func(db *Database) {
		db.logger = logger
	}
}

// WithWorkers bounds the number of metadata files parsed at once.
func WithWorkers(n int) Option {
	return func(db *Database) {
		db.workers = n
	}
}

// New returns an empty database reading <dir>/<platform>/*.json.
// Call Rebuild to load it.
func New(dir, platform string, opts ...Option) *Database {
	db := &Database{
		dir:      dir,
		platform: platform,
		logger:   slog.Default(),
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Open creates a database and loads its first snapshot.
func Open(ctx context.Context, dir, platform string, opts ...Option) (*Database, error) {
	db := New(dir, platform, opts...)
	if err := db.Rebuild(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Platform returns the platform name the database serves.
func (db *Database) Platform() string {
	return db.platform
}

// Dir returns the metadata root directory.
func (db *Database) Dir() string {
	return db.dir
}

// Rebuild parses the metadata files and replaces the snapshot. Readers keep
// the previous snapshot until their lock is released. On failure the current
// snapshot is left untouched.
func (db *Database) Rebuild(ctx context.Context) error {
	paths, err := MetadataFiles(db.dir, db.platform)
	if err != nil {
		return err
	}
	files, err := LoadFiles(ctx, paths, db.workers)
	if err != nil {
		return fmt.Errorf("failed to load %s metadata: %w", db.platform, err)
	}
	data, err := NewPlatformData(files, db.logger)
	if err != nil {
		return fmt.Errorf("failed to index %s metadata: %w", db.platform, err)
	}

	db.mu.Lock()
	db.data = data
	db.mu.Unlock()

	db.logger.Debug("Rebuilt project database",
		"platform", db.platform,
		"files", len(paths),
		"sound_banks", data.soundBanks.len(),
		"events", data.events.len())
	return nil
}

// Swap installs an already built snapshot.
func (db *Database) Swap(data *PlatformData) {
	db.mu.Lock()
	db.data = data
	db.mu.Unlock()
}

// ReadLock acquires the read lock. The returned lock must be released with
// Unlock; the snapshot it exposes stays valid until then.
func (db *Database) ReadLock() *ScopeLock {
	db.mu.RLock()
	return &ScopeLock{db: db, data: db.data}
}

// ScopeLock is a held read lock on a Database.
type ScopeLock struct {
	db   *Database
	data *PlatformData
	once sync.Once
}

// PlatformData returns the locked snapshot, or nil when none is loaded.
func (l *ScopeLock) PlatformData() *PlatformData {
	return l.data
}

// Languages returns the project languages of the snapshot.
func (l *ScopeLock) Languages() []cooked.Language {
	if l.data == nil {
		return nil
	}
	return l.data.Languages()
}

// Unlock releases the read lock. Calling it more than once is a no-op.
func (l *ScopeLock) Unlock() {
	l.once.Do(l.db.mu.RUnlock)
}
