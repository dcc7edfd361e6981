// Package config loads the soundcook.yaml project settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LegacyCodeHQ/soundcook/cooked"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config path
// is given.
const DefaultFileName = "soundcook.yaml"

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything needed to open a project and cook it.
type Config struct {
	// MetadataDir contains one directory of generated metadata per platform.
	MetadataDir string `yaml:"metadataDir"`
	// GeneratedDir contains the generated bank and media files. Defaults to
	// MetadataDir.
	GeneratedDir  string   `yaml:"generatedDir,omitempty"`
	Platform      string   `yaml:"platform"`
	Languages     []string `yaml:"languages,omitempty"`
	DebugNameRule string   `yaml:"debugNameRule,omitempty"`
	Sandbox       string   `yaml:"sandbox"`
	StagePrefix   string   `yaml:"stagePrefix,omitempty"`
	Workers       int      `yaml:"workers,omitempty"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		MetadataDir: "GeneratedSoundBanks",
		Platform:    "Windows",
		Sandbox:     "Staged",
		StagePrefix: "Wwise",
	}
}

// Load reads path over the defaults. An empty path reads DefaultFileName when
// it exists and falls back to the defaults otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required fields and value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.MetadataDir == "" {
		errs = append(errs, errors.New("metadataDir is required"))
	}
	if c.Platform == "" {
		errs = append(errs, errors.New("platform is required"))
	}
	if c.Sandbox == "" {
		errs = append(errs, errors.New("sandbox is required"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if _, err := cooked.ParseDebugNameRule(c.DebugNameRule); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Rule returns the parsed debug name rule.
func (c Config) Rule() cooked.DebugNameRule {
	rule, _ := cooked.ParseDebugNameRule(c.DebugNameRule)
	return rule
}

// SourceDir returns where generated files are read from.
func (c Config) SourceDir() string {
	if c.GeneratedDir != "" {
		return c.GeneratedDir
	}
	return c.MetadataDir
}

// SelectLanguages picks the named languages out of available. An empty
// selection keeps every language.
func (c Config) SelectLanguages(available []cooked.Language) ([]cooked.Language, error) {
	if len(c.Languages) == 0 {
		return available, nil
	}
	byName := make(map[string]cooked.Language, len(available))
	for _, language := range available {
		byName[language.Name] = language
	}
	selected := make([]cooked.Language, 0, len(c.Languages))
	for _, name := range c.Languages {
		language, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown language %q", ErrInvalidConfig, name)
		}
		selected = append(selected, language)
	}
	return selected, nil
}

// resolvePaths makes relative directories relative to the config file.
func (c *Config) resolvePaths(base string) {
	for _, p := range []*string{&c.MetadataDir, &c.GeneratedDir, &c.Sandbox} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}
