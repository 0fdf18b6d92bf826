package render

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/musterpoint/muster/internal/embedded"
	"github.com/musterpoint/muster/pkg/constants"
	"github.com/musterpoint/muster/pkg/errors"
)

// WriteFiles writes rendered documents into the output directory. Each
// file lands via an atomic rename, so readers never observe a partially
// written document. HTML output also gets the stylesheet.
func (r *Renderer) WriteFiles(dir string, docs []*Document) error {
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create output directory", dir, err)
	}

	for _, doc := range docs {
		path := filepath.Join(dir, doc.Filename)
		if err := atomic.WriteFile(path, bytes.NewReader(doc.Content)); err != nil {
			return errors.WrapIO("write document", path, err)
		}
	}

	if r.options.Format == FormatHTML {
		return r.writeStylesheet(dir)
	}
	return nil
}

func (r *Renderer) writeStylesheet(dir string) error {
	css, err := fs.ReadFile(embedded.FS, "style/"+constants.StylesheetFile)
	if err != nil {
		return errors.WrapIO("read stylesheet", constants.StylesheetFile, err)
	}
	path := filepath.Join(dir, constants.StylesheetFile)
	if err := atomic.WriteFile(path, bytes.NewReader(css)); err != nil {
		return errors.WrapIO("write stylesheet", path, err)
	}
	return nil
}
