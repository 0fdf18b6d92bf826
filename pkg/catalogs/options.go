package catalogs

import (
	"io/fs"
	"os"

	"github.com/musterpoint/muster/internal/embedded"
)

// catalogOptions holds the configuration for a catalog.
type catalogOptions struct {
	readFS fs.FS // filesystem the CSV tables are read from
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithFS configures the catalog to read its tables from a custom fs.FS.
func WithFS(fsys fs.FS) Option {
	return func(c *catalogOptions) {
		c.readFS = fsys
	}
}

// WithPath configures the catalog to read its tables from a directory.
func WithPath(path string) Option {
	return func(c *catalogOptions) {
		c.readFS = os.DirFS(path)
	}
}

// WithEmbedded configures the catalog to use the built-in starter data.
func WithEmbedded() Option {
	return func(c *catalogOptions) {
		dataFS, err := fs.Sub(embedded.FS, "data")
		if err != nil {
			c.readFS = embedded.FS
			return
		}
		c.readFS = dataFS
	}
}
