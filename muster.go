// Package muster builds printable army reference documents from CSV
// catalogs and YAML army lists. The root package is the embeddable
// pipeline; cmd/muster wraps it in a CLI.
package muster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/musterpoint/muster/pkg/catalogs"
	"github.com/musterpoint/muster/pkg/errors"
	"github.com/musterpoint/muster/pkg/render"
	"github.com/musterpoint/muster/pkg/resolve"
	"github.com/musterpoint/muster/pkg/roster"
)

// Muster is one configured pipeline: a loaded catalog, a resolver over
// it, and a renderer. A Muster is safe for concurrent reads once built.
type Muster struct {
	config   *config
	catalog  *catalogs.Catalog
	resolver *resolve.Resolver
	renderer *render.Renderer
	logger   zerolog.Logger
}

// New loads the catalog and prepares the pipeline. A catalog that fails
// to load aborts construction; nothing can be built without it.
func New(opts ...Option) (*Muster, error) {
	cfg := defaultsConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	catalog, err := cfg.loadCatalog()
	if err != nil {
		return nil, err
	}

	renderer, err := render.New(cfg.renderOptions)
	if err != nil {
		return nil, err
	}

	return &Muster{
		config:   cfg,
		catalog:  catalog,
		resolver: resolve.New(catalog),
		renderer: renderer,
		logger:   cfg.logger,
	}, nil
}

// Catalog returns the loaded catalog.
func (m *Muster) Catalog() *catalogs.Catalog {
	return m.catalog
}

// Resolve parses and resolves a single army list without rendering it.
func (m *Muster) Resolve(path string) (*resolve.ResolvedArmy, error) {
	army, err := roster.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return m.resolver.Army(army)
}

// BuildArmy parses, resolves and renders a single army list into an
// in-memory document. Nothing is written to disk.
func (m *Muster) BuildArmy(path string) (*render.Document, error) {
	resolved, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}
	return m.renderer.Army(resolved)
}

// BuildResult is the outcome of one batch run.
type BuildResult struct {
	// Documents are the rendered army documents, in roster file order,
	// followed by the index.
	Documents []*render.Document
	// Armies are the resolved armies behind the documents.
	Armies []*resolve.ResolvedArmy
	// Errors maps each failed roster file to its error.
	Errors map[string]error
	// OutputDir is where documents were written, empty for dry runs.
	OutputDir string
}

// Failed reports whether any roster in the batch failed.
func (r *BuildResult) Failed() bool {
	return len(r.Errors) > 0
}

// Build runs the full batch: every army list in the lists directory is
// resolved and rendered, and the documents plus an index are written to
// the output directory. Roster failures are isolated per file; the batch
// finishes, writes what succeeded, and returns a non-nil error so the
// caller exits non-zero.
func (m *Muster) Build(ctx context.Context) (*BuildResult, error) {
	result, err := m.buildDocuments(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.renderer.WriteFiles(m.config.outputDir, result.Documents); err != nil {
		return nil, err
	}
	result.OutputDir = m.config.outputDir

	m.logger.Info().
		Int("documents", len(result.Documents)).
		Int("failed", len(result.Errors)).
		Str("output", m.config.outputDir).
		Msg("build finished")

	return result, result.err()
}

// Validate resolves every army list without rendering or writing. It
// shares Build's isolation semantics.
func (m *Muster) Validate(ctx context.Context) (*BuildResult, error) {
	result, err := m.resolveAll(ctx)
	if err != nil {
		return nil, err
	}
	return result, result.err()
}

func (m *Muster) buildDocuments(ctx context.Context) (*BuildResult, error) {
	result, err := m.resolveAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, army := range result.Armies {
		doc, renderErr := m.renderer.Army(army)
		if renderErr != nil {
			return nil, renderErr
		}
		result.Documents = append(result.Documents, doc)
	}

	// The index only links armies that produced a document.
	index, err := m.renderer.Index(result.Armies)
	if err != nil {
		return nil, err
	}
	result.Documents = append(result.Documents, index)
	return result, nil
}

func (m *Muster) resolveAll(ctx context.Context) (*BuildResult, error) {
	fsys, dir, err := m.config.listsFS()
	if err != nil {
		return nil, err
	}

	files, err := roster.LoadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{Errors: make(map[string]error)}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if file.Err != nil {
			m.logger.Error().Err(file.Err).Str("file", file.Path).Msg("roster failed")
			result.Errors[file.Path] = file.Err
			continue
		}

		resolved, err := m.resolver.Army(file.Army)
		if err != nil {
			err = errors.WrapRoster(file.Path, err)
			m.logger.Error().Err(err).Str("file", file.Path).Msg("roster failed")
			result.Errors[file.Path] = err
			continue
		}

		m.logger.Debug().
			Str("army", resolved.Name).
			Str("points", resolved.TotalCost.String()).
			Msg("army resolved")
		result.Armies = append(result.Armies, resolved)
	}

	return result, nil
}

func (r *BuildResult) err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d army lists failed", len(r.Errors), len(r.Errors)+len(r.Armies))
}
