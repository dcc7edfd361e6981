package projectdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFiles_KeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"b", "a", "c"} {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, []byte(`{"PlatformInfo":{"Name":"`+name+`"}}`), 0o644))
		paths = append(paths, path)
	}

	files, err := projectdb.LoadFiles(context.Background(), paths, 2)

	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "b", files[0].PlatformInfo.Name)
	assert.Equal(t, "a", files[1].PlatformInfo.Name)
	assert.Equal(t, "c", files[2].PlatformInfo.Name)
}

func TestLoadFiles_ReportsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	missing := filepath.Join(dir, "missing.json")
	require.NoError(t, os.WriteFile(good, []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`[`), 0o644))

	_, err := projectdb.LoadFiles(context.Background(), []string{good, bad, missing}, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, projectdb.ErrInvalidMetadata)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Contains(t, err.Error(), "missing.json")
}

func TestLoadFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := projectdb.LoadFiles(ctx, []string{"whatever.json"}, 1)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetadataFiles_EmptyPlatformDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Linux"), 0o755))

	_, err := projectdb.MetadataFiles(dir, "Linux")

	assert.ErrorIs(t, err, projectdb.ErrUnknownPlatform)
}
