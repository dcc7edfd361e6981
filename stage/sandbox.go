// Package stage copies cooked files into a sandbox directory, writing each
// destination at most once.
package stage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ErrConflictingStage is returned when two different sources target the
// same destination.
var ErrConflictingStage = errors.New("two different files staged to the same path")

// WriteFunc stores data at dest.
type WriteFunc func(dest string, data []byte) error

// WriteToDisk creates missing parent directories and writes the file.
func WriteToDisk(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Sandbox records every staged destination with its source. It is safe for
// concurrent use.
type Sandbox struct {
	root    string
	prefix  string
	write   WriteFunc
	logger  *slog.Logger
	metrics *Metrics

	mu     sync.Mutex
	staged map[string]*stagedFile
}

// stagedFile is a destination claimed by a source. done is closed once the
// write finished; err holds its result.
type stagedFile struct {
	src  string
	done chan struct{}
	err  error
}

// Option configures a Sandbox.
type Option func(*Sandbox)

// WithPrefix stages files under <root>/<prefix>.
func WithPrefix(prefix string) Option {
	return func(s *Sandbox) {
		s.prefix = prefix
	}
}

// WithWriteFunc replaces the disk writer.
func WithWriteFunc(write WriteFunc) Option {
	return func(s *Sandbox) {
		s.write = write
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sandbox) {
		s.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(s *Sandbox) {
		s.metrics = metrics
	}
}

// New returns a sandbox rooted at root.
func New(root string, opts ...Option) *Sandbox {
	s := &Sandbox{
		root:   root,
		write:  WriteToDisk,
		logger: slog.Default(),
		staged: make(map[string]*stagedFile),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(nil)
	}
	return s
}

// Destination returns where pathName is staged.
func (s *Sandbox) Destination(pathName string) string {
	return filepath.Join(s.root, s.prefix, filepath.FromSlash(pathName))
}

// StageFile copies src to the destination of pathName. Staging the same
// source again is a no-op once the first write succeeded; callers arriving
// while it runs wait for its result. Staging a different source to an
// occupied destination fails with ErrConflictingStage and keeps the first
// source.
func (s *Sandbox) StageFile(src, pathName string) error {
	dest := s.Destination(pathName)

	for {
		s.mu.Lock()
		existing, ok := s.staged[dest]
		if !ok {
			break
		}
		s.mu.Unlock()

		if existing.src != src {
			s.metrics.conflicts.Inc()
			return fmt.Errorf("%s and %s -> %s: %w", src, existing.src, dest, ErrConflictingStage)
		}
		<-existing.done
		if existing.err == nil {
			s.metrics.filesSkipped.Inc()
			s.logger.Debug("Skipping already staged file", "source", src, "destination", dest)
			return nil
		}
		// The first write failed and released the destination.
	}
	file := &stagedFile{src: src, done: make(chan struct{})}
	s.staged[dest] = file
	s.mu.Unlock()

	data, err := os.ReadFile(src)
	if err == nil {
		err = s.write(dest, data)
	}
	if err != nil {
		err = fmt.Errorf("failed to stage %s: %w", src, err)
		s.mu.Lock()
		delete(s.staged, dest)
		s.mu.Unlock()
		file.err = err
		close(file.done)
		s.metrics.writeErrors.Inc()
		return err
	}
	close(file.done)

	s.metrics.filesStaged.Inc()
	s.metrics.bytesWritten.Add(float64(len(data)))
	s.logger.Info("Adding file", "destination", dest, "bytes", len(data))
	return nil
}

// Staged returns the destination to source map of every file written so
// far.
func (s *Sandbox) Staged() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[string]string, len(s.staged))
	for dest, file := range s.staged {
		if file.written() {
			result[dest] = file.src
		}
	}
	return result
}

// Source returns the source recorded for pathName.
func (s *Sandbox) Source(pathName string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	file, ok := s.staged[s.Destination(pathName)]
	if !ok {
		return "", false
	}
	return file.src, true
}

func (f *stagedFile) written() bool {
	select {
	case <-f.done:
		return f.err == nil
	default:
		return false
	}
}
