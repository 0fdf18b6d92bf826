package catalogs

import (
	"github.com/musterpoint/muster/pkg/errors"
)

// Table is a name-keyed collection of catalog records that preserves
// declaration order. Tables are populated once during Load and are
// read-only afterwards; every roster resolution in a run shares them
// without copying.
type Table[T any] struct {
	kind    string // catalog kind, used in error messages
	file    string // source file, used in error messages
	names   []string
	entries map[string]T
}

// NewTable creates an empty table for the given catalog kind.
func NewTable[T any](kind, file string) *Table[T] {
	return &Table[T]{
		kind:    kind,
		file:    file,
		entries: make(map[string]T),
	}
}

// Kind returns the catalog kind this table holds.
func (t *Table[T]) Kind() string {
	return t.kind
}

// Add inserts a record under its name. Duplicate names within one table
// are a data error.
func (t *Table[T]) Add(name string, entry T) error {
	if _, exists := t.entries[name]; exists {
		return errors.NewDuplicateEntryError(t.kind, name, t.file)
	}
	t.names = append(t.names, name)
	t.entries[name] = entry
	return nil
}

// Get returns a record by name and whether it exists.
func (t *Table[T]) Get(name string) (T, bool) {
	entry, ok := t.entries[name]
	return entry, ok
}

// Exists checks if a record exists without returning it.
func (t *Table[T]) Exists(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Len returns the number of records.
func (t *Table[T]) Len() int {
	return len(t.names)
}

// Names returns all record names in declaration order.
func (t *Table[T]) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// List returns all records in declaration order.
func (t *Table[T]) List() []T {
	list := make([]T, 0, len(t.names))
	for _, name := range t.names {
		list = append(list, t.entries[name])
	}
	return list
}

// ForEach applies fn to each record in declaration order. If fn returns
// false, iteration stops early.
func (t *Table[T]) ForEach(fn func(name string, entry T) bool) {
	for _, name := range t.names {
		if !fn(name, t.entries[name]) {
			break
		}
	}
}
