package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
metadataDir: Banks
platform: Mac
languages: [English(US)]
debugNameRule: Name
workers: 2
`))

	require.NoError(t, err)
	assert.Equal(t, "Banks", cfg.MetadataDir)
	assert.Equal(t, "Mac", cfg.Platform)
	assert.Equal(t, []string{"English(US)"}, cfg.Languages)
	assert.Equal(t, cooked.DebugNameName, cfg.Rule())
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "Staged", cfg.Sandbox, "unset keys keep their default")
	assert.Equal(t, "Banks", cfg.SourceDir())
}

func TestParse_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, cooked.DebugNameObjectPath, cfg.Rule())
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("platfrom: Mac\n"))

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParse_ReportsEveryInvalidField(t *testing.T) {
	_, err := Parse([]byte("platform: \"\"\nworkers: -1\ndebugNameRule: Verbose\n"))

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorContains(t, err, "platform is required")
	assert.ErrorContains(t, err, "workers must not be negative")
	assert.ErrorContains(t, err, "unknown debug name rule")
}

func TestLoad_ResolvesPathsAgainstConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metadataDir: Generated\ngeneratedDir: /abs/generated\n"), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Generated"), cfg.MetadataDir)
	assert.Equal(t, "/abs/generated", cfg.GeneratedDir)
	assert.Equal(t, filepath.Join(dir, "Staged"), cfg.Sandbox)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingDefaultFileFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSelectLanguages(t *testing.T) {
	english := cooked.Language{ID: 1, Name: "English(US)", Requirement: cooked.LanguageMandatory}
	french := cooked.Language{ID: 2, Name: "French(France)"}
	available := []cooked.Language{english, french}

	all, err := Config{}.SelectLanguages(available)
	require.NoError(t, err)
	assert.Equal(t, available, all)

	some, err := Config{Languages: []string{"French(France)"}}.SelectLanguages(available)
	require.NoError(t, err)
	assert.Equal(t, []cooked.Language{french}, some)

	_, err = Config{Languages: []string{"German"}}.SelectLanguages(available)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
