// Package app provides the application context and dependency management
// for the muster CLI. It centralizes configuration, logging, and the
// pipeline instance behind one App value.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	muster "github.com/musterpoint/muster"
	"github.com/musterpoint/muster/pkg/render"
)

// App represents the muster application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Pipeline instance (lazy-initialized, singleton)
	mu       sync.Mutex
	pipeline *muster.Muster
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
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

// Version returns the version string.
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

// Muster returns the pipeline instance, creating it lazily. The catalog
// loads once; every command after that shares it.
func (a *App) Muster() (*muster.Muster, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipeline != nil {
		return a.pipeline, nil
	}

	m, err := muster.New(a.pipelineOptions()...)
	if err != nil {
		return nil, err
	}
	a.pipeline = m
	return m, nil
}

// pipelineOptions constructs pipeline options from the app configuration.
func (a *App) pipelineOptions() []muster.Option {
	opts := []muster.Option{
		muster.WithListsDir(a.config.ListsDir),
		muster.WithOutputDir(a.config.OutputDir),
		muster.WithLogger(*a.logger),
		muster.WithRenderOptions(render.Options{
			ShowBuffedStats: a.config.ShowBuffedStats,
			PrintLayout:     a.config.PrintLayout,
			IncludeNotes:    a.config.IncludeNotes,
			Format:          a.config.DocumentFormat,
		}),
	}

	if a.config.UseEmbeddedData {
		opts = append(opts, muster.WithEmbeddedData())
	} else {
		opts = append(opts, muster.WithDataDir(a.config.DataDir))
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
