// Package cooker resolves authored audio objects into the cooked data the
// runtime loads, and stages the files that data points at.
package cooker

import (
	"errors"
	"log/slog"
	"runtime"
	"slices"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/LegacyCodeHQ/soundcook/stage"
)

// ExternalSourceCooker stages the files of an external source.
type ExternalSourceCooker interface {
	CookExternalSource(source cooked.ExternalSource, sandbox *stage.Sandbox) error
}

// Cooker resolves assets of one platform's project database.
type Cooker struct {
	db              *projectdb.Database
	logger          *slog.Logger
	debugNameRule   cooked.DebugNameRule
	languages       []cooked.Language
	externalSources ExternalSourceCooker
	generatedDir    string
	workers         int
}

// Option configures a Cooker.
type Option func(*Cooker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Cooker) {
		c.logger = logger
	}
}

// WithDebugNameRule selects the debug names written into cooked data.
func WithDebugNameRule(rule cooked.DebugNameRule) Option {
	return func(c *Cooker) {
		c.debugNameRule = rule
	}
}

// WithLanguages restricts resolution to the given languages. Languages are
// matched by id.
func WithLanguages(languages ...cooked.Language) Option {
	return func(c *Cooker) {
		c.languages = languages
	}
}

// WithExternalSourceCooker sets the collaborator that stages external
// sources. Without one, external sources are skipped with a warning.
func WithExternalSourceCooker(esc ExternalSourceCooker) Option {
	return func(c *Cooker) {
		c.externalSources = esc
	}
}

// WithGeneratedDir sets the directory holding the generated banks and media.
// It defaults to the metadata directory of the database.
func WithGeneratedDir(dir string) Option {
	return func(c *Cooker) {
		c.generatedDir = dir
	}
}

// WithWorkers bounds the number of assets resolved or staged at once.
func WithWorkers(n int) Option {
	return func(c *Cooker) {
		c.workers = n
	}
}

// New returns a cooker reading db. A nil db is accepted; every resolver then
// fails with ErrNotInitialized.
func New(db *projectdb.Database, opts ...Option) *Cooker {
	c := &Cooker{
		db:      db,
		logger:  slog.Default(),
		workers: runtime.NumCPU(),
	}
	if db != nil {
		c.generatedDir = db.Dir()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DebugNameRule returns the rule the cooker applies.
func (c *Cooker) DebugNameRule() cooked.DebugNameRule {
	return c.debugNameRule
}

// readLock locks the database for one resolver call.
func (c *Cooker) readLock() (*projectdb.ScopeLock, *projectdb.PlatformData, error) {
	if c.db == nil {
		return nil, nil, ErrNotInitialized
	}
	lock := c.db.ReadLock()
	pd := lock.PlatformData()
	if pd == nil {
		lock.Unlock()
		return nil, nil, ErrNoPlatformData
	}
	return lock, pd, nil
}

// activeLanguages returns the project languages, restricted by the language
// filter when one is set.
func (c *Cooker) activeLanguages(pd *projectdb.PlatformData) []cooked.Language {
	languages := pd.Languages()
	if len(c.languages) == 0 {
		return languages
	}
	return slices.DeleteFunc(languages, func(l cooked.Language) bool {
		return !slices.ContainsFunc(c.languages, func(want cooked.Language) bool {
			return want.ID == l.ID
		})
	})
}

// fail wraps err with the asset identity and logs it.
func (c *Cooker) fail(op string, info AssetInfo, err error) error {
	var assetErr *AssetError
	if errors.As(err, &assetErr) {
		return err
	}
	assetErr = &AssetError{Op: op, GUID: info.GUID, ShortID: info.ShortID, Name: info.Name, Err: err}
	c.logger.Error(op+" failed", assetAttrs(info, slog.Any("error", err))...)
	return assetErr
}

func assetAttrs(info AssetInfo, extra ...any) []any {
	attrs := []any{
		slog.String("guid", info.GUID.String()),
		slog.Uint64("short_id", uint64(info.ShortID)),
		slog.String("name", info.Name),
	}
	return append(attrs, extra...)
}

func sortedLanguages[R any](refs map[cooked.Language]R) []cooked.Language {
	languages := make([]cooked.Language, 0, len(refs))
	for language := range refs {
		languages = append(languages, language)
	}
	slices.SortFunc(languages, cooked.CompareLanguages)
	return languages
}
