// Package roster parses army-list YAML documents into a typed tree of
// organizational nodes: army > detachments > squads > item selections.
//
// Parsing is purely syntactic. Item names stay plain strings here; joining
// them against the catalog is the resolver's job, which keeps structural
// errors distinguishable from catalog-lookup failures.
package roster

import (
	"github.com/musterpoint/muster/pkg/catalogs"
)

// Army is the root node of one army list.
type Army struct {
	Name        string
	PointsLimit catalogs.Points
	Warlord     string
	Notes       string
	Detachments []*Detachment

	// File is the source path the army was parsed from. The output
	// document name derives from its basename.
	File string
}

// Detachment is a top-level organizational grouping within an army. Type
// names a formation in the catalog.
type Detachment struct {
	Name  string
	Type  string
	Units []*Squad
}

// Squad is a group of models with their weapon and wargear selections.
type Squad struct {
	Name string
	Slot string

	// BaseCost is an optional flat squad cost added on top of the
	// per-item costs.
	BaseCost catalogs.Points

	// Items holds the squad's selections in declaration order. Names
	// reference the catalog's combined item namespace.
	Items []Item

	Notes    string
	Portrait string

	// Campaign fields, optional.
	Experience int
	Specialist string
	Demeanour  string
}

// Item is one selection line: a catalog name and how many are taken.
// Quantity is the per-node cost multiplier.
type Item struct {
	Name     string
	Quantity int
}

// Level returns the campaign level the squad's experience has earned:
// 3, 7 and 12 experience unlock levels 1, 2 and 3.
func (s *Squad) Level() int {
	switch {
	case s.Experience >= 12:
		return 3
	case s.Experience >= 7:
		return 2
	case s.Experience >= 3:
		return 1
	}
	return 0
}

// Path returns the army's location string for error reporting.
func (a *Army) Path() Path {
	return Path{}.Army(a.Name)
}
