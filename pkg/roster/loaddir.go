package roster

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/musterpoint/muster/pkg/errors"
)

// FileResult is the outcome of parsing one army-list file. A file that
// fails to parse carries its error instead of an army so sibling files
// are unaffected.
type FileResult struct {
	Path string
	Army *Army
	Err  error
}

// LoadDir parses every .yaml/.yml file in a lists directory, in filename
// order. Parse failures are recorded per file, not returned.
func LoadDir(fsys fs.FS, dir string) ([]FileResult, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.WrapIO("read directory", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(entry.Name())) {
		case ".yaml", ".yml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	results := make([]FileResult, 0, len(names))
	for _, name := range names {
		file := path.Join(dir, name)
		result := FileResult{Path: file}

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			result.Err = errors.WrapIO("read", file, err)
		} else if army, err := Parse(file, data); err != nil {
			result.Err = errors.WrapRoster(file, err)
		} else {
			result.Army = army
		}
		results = append(results, result)
	}
	return results, nil
}
