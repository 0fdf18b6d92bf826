package roster

import (
	"fmt"
	"strings"
)

// Path is a human-readable location of a node in a roster tree, used to
// pinpoint errors in hand-authored data.
type Path []string

// String joins the path segments for display.
func (p Path) String() string {
	return strings.Join(p, " > ")
}

// Army appends an army segment.
func (p Path) Army(name string) Path {
	return p.append("army", name)
}

// Detachment appends a detachment segment.
func (p Path) Detachment(name string) Path {
	return p.append("detachment", name)
}

// Squad appends a squad segment.
func (p Path) Squad(name string) Path {
	return p.append("squad", name)
}

// Item appends an item segment.
func (p Path) Item(name string) Path {
	return p.append("item", name)
}

func (p Path) append(kind, name string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, fmt.Sprintf("%s %q", kind, name))
}
