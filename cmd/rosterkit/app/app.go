// Package app provides the application context and dependency management
// for the rosterkit CLI. It centralizes configuration, logging, and engine
// construction so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	"github.com/rosterkit/rosterkit"
	"github.com/rosterkit/rosterkit/pkg/similarity"
)

// App represents the rosterkit application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Engine builds a detection engine from the app configuration. Engines
// hold per-run detection state, so each command invocation gets a fresh
// one.
func (a *App) Engine() (rosterkit.Engine, error) {
	return rosterkit.New(a.buildEngineOptions()...)
}

// buildEngineOptions constructs engine options from the app configuration.
func (a *App) buildEngineOptions() []rosterkit.Option {
	opts := []rosterkit.Option{
		rosterkit.WithLogger(*a.logger),
	}

	thresholds := similarity.DefaultThresholds()
	if a.config.DuplicateThreshold > 0 {
		thresholds.Duplicate = a.config.DuplicateThreshold
	}
	if a.config.NameThreshold > 0 {
		thresholds.NameAlone = a.config.NameThreshold
	}
	opts = append(opts, rosterkit.WithThresholds(thresholds))

	if a.config.Clustering == ClusteringLegacy {
		opts = append(opts, rosterkit.WithLegacyClustering())
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
