// Package render turns resolved armies into printable reference
// documents. Rendering is a pure function of the resolved tree and the
// options: the same input always produces the same bytes.
package render

import (
	"html/template"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/musterpoint/muster/internal/embedded"
	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/errors"
	"github.com/musterpoint/muster/pkg/resolve"
)

// Output formats.
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Options control document rendering. The zero value renders plain HTML
// cards without notes.
type Options struct {
	// ShowBuffedStats overlays squad-level stat buffs onto weapon
	// profile rows.
	ShowBuffedStats bool
	// PrintLayout styles pages for printing instead of the screen.
	PrintLayout bool
	// IncludeNotes renders free-form army and squad notes.
	IncludeNotes bool
	// Format selects the output format, html or markdown.
	Format string
}

// Document is one rendered output file.
type Document struct {
	Name     string
	Filename string
	Content  []byte
}

// Renderer renders resolved armies with one fixed set of options.
type Renderer struct {
	options Options
	army    *template.Template
	index   *template.Template
}

// New returns a renderer for the given options.
func New(options Options) (*Renderer, error) {
	if options.Format == "" {
		options.Format = FormatHTML
	}
	if options.Format != FormatHTML && options.Format != FormatMarkdown {
		return nil, errors.New("unsupported output format " + options.Format)
	}

	r := &Renderer{options: options}
	if options.Format == FormatHTML {
		var err error
		if r.army, err = parseTemplate("army.html.tmpl"); err != nil {
			return nil, err
		}
		if r.index, err = parseTemplate("index.html.tmpl"); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.options
}

func parseTemplate(name string) (*template.Template, error) {
	data, err := fs.ReadFile(embedded.FS, "templates/"+name)
	if err != nil {
		return nil, errors.WrapIO("read template", name, err)
	}
	tmpl, err := template.New(name).Parse(string(data))
	if err != nil {
		return nil, errors.WrapParse("template", name, err)
	}
	return tmpl, nil
}

// Army renders one resolved army into a single document.
func (r *Renderer) Army(army *resolve.ResolvedArmy) (*Document, error) {
	doc := &Document{
		Name:     army.Name,
		Filename: r.outputName(sourceBase(army)),
	}

	view := r.options.armyView(army)
	content, err := r.renderArmy(view)
	if err != nil {
		return nil, err
	}
	doc.Content = content
	return doc, nil
}

func (r *Renderer) renderArmy(view armyView) ([]byte, error) {
	if r.options.Format == FormatMarkdown {
		return marshalArmyMarkdown(view)
	}
	var buf strings.Builder
	if err := r.army.Execute(&buf, view); err != nil {
		return nil, errors.WrapParse("template", "army.html.tmpl", err)
	}
	return []byte(buf.String()), nil
}

// IndexEntry is one army line on the index page.
type IndexEntry struct {
	Name          string
	Filename      string
	TotalCost     string
	PointsLimit   string
	CommandPoints int
}

// Index renders the index document linking every successfully rendered
// army, in render order.
func (r *Renderer) Index(armies []*resolve.ResolvedArmy) (*Document, error) {
	view := struct {
		Entries     []IndexEntry
		Stylesheet  string
		PrintLayout bool
	}{Stylesheet: "style.css", PrintLayout: r.options.PrintLayout}

	for _, army := range armies {
		view.Entries = append(view.Entries, IndexEntry{
			Name:          army.Name,
			Filename:      r.outputName(sourceBase(army)),
			TotalCost:     army.TotalCost.String(),
			PointsLimit:   army.PointsLimit.String(),
			CommandPoints: army.CommandPoints,
		})
	}

	doc := &Document{Name: "Index"}
	if r.options.Format == FormatMarkdown {
		doc.Filename = "index.md"
		content, err := marshalIndexMarkdown(view.Entries)
		if err != nil {
			return nil, err
		}
		doc.Content = content
		return doc, nil
	}

	doc.Filename = constants.IndexFile
	var buf strings.Builder
	if err := r.index.Execute(&buf, view); err != nil {
		return nil, errors.WrapParse("template", "index.html.tmpl", err)
	}
	doc.Content = []byte(buf.String())
	return doc, nil
}

// sourceBase derives the output basename from the army's source file, or
// its name when the army was built in memory.
func sourceBase(army *resolve.ResolvedArmy) string {
	if army.Source != nil && army.Source.File != "" {
		base := filepath.Base(army.Source.File)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return slug(army.Name)
}

func (r *Renderer) outputName(base string) string {
	if r.options.Format == FormatMarkdown {
		return base + ".md"
	}
	return base + ".html"
}

// slug lowercases a display name into a safe filename.
func slug(name string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(name) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		case c == ' ', c == '-', c == '_':
			b.WriteByte('-')
		}
	}
	return b.String()
}
