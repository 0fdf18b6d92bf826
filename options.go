package muster

import (
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/musterpoint/muster/internal/embedded"
	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/logging"
	"github.com/musterpoint/muster/pkg/render"
)

type config struct {
	dataDir       string
	listsDir      string
	outputDir     string
	embeddedData  bool
	renderOptions render.Options
	logger        zerolog.Logger
}

func defaultsConfig() *config {
	return &config{
		dataDir:   constants.DefaultDataDir,
		listsDir:  constants.DefaultListsDir,
		outputDir: constants.DefaultOutputDir,
		logger:    *logging.Default(),
	}
}

// Option configures a Muster pipeline.
type Option func(*config)

// WithDataDir sets the catalog directory.
func WithDataDir(dir string) Option {
	return func(c *config) {
		c.dataDir = dir
		c.embeddedData = false
	}
}

// WithListsDir sets the army-list directory.
func WithListsDir(dir string) Option {
	return func(c *config) { c.listsDir = dir }
}

// WithOutputDir sets the document output directory.
func WithOutputDir(dir string) Option {
	return func(c *config) { c.outputDir = dir }
}

// WithEmbeddedData uses the compiled-in starter catalog and army lists
// instead of directories on disk.
func WithEmbeddedData() Option {
	return func(c *config) { c.embeddedData = true }
}

// WithRenderOptions sets the document rendering options.
func WithRenderOptions(options render.Options) Option {
	return func(c *config) { c.renderOptions = options }
}

// WithLogger sets the pipeline logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func (c *config) loadCatalog() (*catalogs.Catalog, error) {
	if c.embeddedData {
		return catalogs.New(catalogs.WithEmbedded())
	}
	return catalogs.NewFromPath(c.dataDir)
}

// listsFS returns the filesystem and directory the batch reads army
// lists from.
func (c *config) listsFS() (fs.FS, string, error) {
	if c.embeddedData {
		return embedded.FS, "lists", nil
	}
	if _, err := os.Stat(c.listsDir); err != nil {
		return nil, "", err
	}
	return os.DirFS(c.listsDir), ".", nil
}
