package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantChange_MetadataDocuments(t *testing.T) {
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "SoundbanksInfo.json", Op: fsnotify.Write}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "Main.JSON", Op: fsnotify.Create}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "Init.json", Op: fsnotify.Remove}))
	assert.True(t, isRelevantChange(fsnotify.Event{Name: "Init.json", Op: fsnotify.Rename}))
}

func TestIsRelevantChange_OtherFilesIgnored(t *testing.T) {
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "Main.bnk", Op: fsnotify.Write}))
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "Media/2.wem", Op: fsnotify.Create}))
}

func TestIsRelevantChange_ChmodIgnored(t *testing.T) {
	assert.False(t, isRelevantChange(fsnotify.Event{Name: "Main.json", Op: fsnotify.Chmod}))
}

func TestAddWatchDirsAddsNestedDirectories(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "English(US)")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Main.json"), []byte("{}"), 0o644))

	var added []string
	err := addWatchDirsWithAdder(root, func(path string) error {
		added = append(added, path)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{root, nested}, added)
}

func TestAddWatchDirsIgnoresMissingDirectoriesFromAdder(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "missing-dir")
	require.NoError(t, os.MkdirAll(target, 0o755))

	adder := func(path string) error {
		if path == target {
			return fs.ErrNotExist
		}
		return nil
	}

	assert.NoError(t, addWatchDirsWithAdder(root, adder))
}

func TestAddWatchDirsFailsForMissingRoot(t *testing.T) {
	err := addWatchDirsWithAdder(filepath.Join(t.TempDir(), "gone"), func(string) error { return nil })

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAddWatchDirsWithWatcher(t *testing.T) {
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	root := t.TempDir()
	require.NoError(t, addWatchDirs(watcher, root))

	assert.Equal(t, []string{root}, watcher.WatchList())
}
