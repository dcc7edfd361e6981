// Package project opens the database and cooker shared by the commands.
package project

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/soundcook/cooker"
	"github.com/LegacyCodeHQ/soundcook/internal/config"
	"github.com/LegacyCodeHQ/soundcook/internal/logging"
	"github.com/LegacyCodeHQ/soundcook/projectdb"
	"github.com/spf13/cobra"
)

// Flags are the project selection flags every command accepts.
type Flags struct {
	ConfigPath    string
	MetadataDir   string
	GeneratedDir  string
	Platform      string
	Languages     []string
	DebugNameRule string
	Verbose       bool
}

// Register adds the flags to cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ConfigPath, "config", "", "Config file (default: ./"+config.DefaultFileName+" when present)")
	cmd.Flags().StringVarP(&f.MetadataDir, "metadata", "m", "", "Generated sound bank metadata directory")
	cmd.Flags().StringVar(&f.GeneratedDir, "generated", "", "Directory holding the generated bank and media files (default: metadata directory)")
	cmd.Flags().StringVarP(&f.Platform, "platform", "p", "", "Platform to cook")
	cmd.Flags().StringSliceVarP(&f.Languages, "language", "l", nil, "Languages to cook (comma-separated, default: every project language)")
	cmd.Flags().StringVar(&f.DebugNameRule, "debug-names", "", "Debug names to export: ObjectPath, Name or Release")
	cmd.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Log debug messages")
}

// Config loads the config file and applies the flags set on cmd over it.
func (f *Flags) Config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	changed := cmd.Flags().Changed
	if changed("metadata") {
		cfg.MetadataDir = f.MetadataDir
	}
	if changed("generated") {
		cfg.GeneratedDir = f.GeneratedDir
	}
	if changed("platform") {
		cfg.Platform = f.Platform
	}
	if changed("language") {
		cfg.Languages = f.Languages
	}
	if changed("debug-names") {
		cfg.DebugNameRule = f.DebugNameRule
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Project is an opened project ready to cook.
type Project struct {
	Config config.Config
	Logger *slog.Logger
	DB     *projectdb.Database
	Cooker *cooker.Cooker
}

// Open loads the configured metadata and builds a cooker for it. Logs go to
// the command's error stream.
func Open(ctx context.Context, cmd *cobra.Command, f *Flags) (*Project, error) {
	cfg, err := f.Config(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.New(cmd.ErrOrStderr(), f.Verbose)

	var dbOpts []projectdb.Option
	dbOpts = append(dbOpts, projectdb.WithLogger(logger))
	if cfg.Workers > 0 {
		dbOpts = append(dbOpts, projectdb.WithWorkers(cfg.Workers))
	}
	db, err := projectdb.Open(ctx, cfg.MetadataDir, cfg.Platform, dbOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	lock := db.ReadLock()
	languages, err := cfg.SelectLanguages(lock.Languages())
	lock.Unlock()
	if err != nil {
		return nil, err
	}

	opts := []cooker.Option{
		cooker.WithLogger(logger),
		cooker.WithDebugNameRule(cfg.Rule()),
		cooker.WithGeneratedDir(cfg.SourceDir()),
	}
	if len(cfg.Languages) > 0 {
		opts = append(opts, cooker.WithLanguages(languages...))
	}
	if cfg.Workers > 0 {
		opts = append(opts, cooker.WithWorkers(cfg.Workers))
	}

	return &Project{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cooker: cooker.New(db, opts...),
	}, nil
}
