package projectdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/LegacyCodeHQ/soundcook/projectdb/metadata"
	"golang.org/x/sync/errgroup"
)

// LoadFiles parses every file concurrently and waits for all of them before
// returning. Results keep the order of paths. Every failing file is reported
// in the joined error.
func LoadFiles(ctx context.Context, paths []string, workers int) ([]*metadata.RootFile, error) {
	files := make([]*metadata.RootFile, len(paths))
	errs := make([]error, len(paths))

	g := new(errgroup.Group)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			files[i], errs[i] = loadFile(path)
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return files, nil
}

func loadFile(path string) (*metadata.RootFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var file metadata.RootFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", path, ErrInvalidMetadata, err)
	}
	return &file, nil
}

// MetadataFiles lists the metadata documents of a platform.
func MetadataFiles(dir, platform string) ([]string, error) {
	platformDir := filepath.Join(dir, platform)
	info, err := os.Stat(platformDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s has no metadata directory %s: %w", platform, platformDir, ErrUnknownPlatform)
	}
	paths, err := filepath.Glob(filepath.Join(platformDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s has no metadata files: %w", platform, ErrUnknownPlatform)
	}
	sort.Strings(paths)
	return paths, nil
}
