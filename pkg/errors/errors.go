// Package errors provides custom error types for the muster system.
// These errors carry the file, row, and roster-path context a human
// needs to fix hand-authored catalog and roster data.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the muster system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntry indicates that a catalog name appears more than once
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrMalformedRow indicates that a catalog row could not be parsed
	ErrMalformedRow = errors.New("malformed catalog row")

	// ErrSchema indicates that a roster document violates the expected shape
	ErrSchema = errors.New("schema error")

	// ErrUnknownReference indicates a roster name with no catalog entry
	ErrUnknownReference = errors.New("unknown reference")

	// ErrInvalidOverride indicates an invalid per-node cost override
	ErrInvalidOverride = errors.New("invalid cost override")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Name     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// DuplicateEntryError reports a catalog name that appears more than once
// within a single table file.
type DuplicateEntryError struct {
	Catalog string // catalog kind: "models", "weapons", ...
	Name    string
	File    string
}

// Error implements the error interface
func (e *DuplicateEntryError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("duplicate %s entry %q in %s", e.Catalog, e.Name, e.File)
	}
	return fmt.Sprintf("duplicate %s entry %q", e.Catalog, e.Name)
}

// Is implements errors.Is support
func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// NewDuplicateEntryError creates a new DuplicateEntryError
func NewDuplicateEntryError(catalog, name, file string) *DuplicateEntryError {
	return &DuplicateEntryError{Catalog: catalog, Name: name, File: file}
}

// CatalogRowError reports a malformed catalog row: a missing required
// field, a non-numeric cost, or similar. Row is 1-based and counts data
// rows, excluding the header.
type CatalogRowError struct {
	File    string
	Row     int
	Field   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *CatalogRowError) Error() string {
	switch {
	case e.Row > 0 && e.Field != "":
		return fmt.Sprintf("%s row %d: field %q: %s", e.File, e.Row, e.Field, e.Message)
	case e.Row > 0:
		return fmt.Sprintf("%s row %d: %s", e.File, e.Row, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s: field %q: %s", e.File, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
}

// Unwrap implements errors.Unwrap
func (e *CatalogRowError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *CatalogRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// NewCatalogRowError creates a new CatalogRowError
func NewCatalogRowError(file string, row int, field, message string) *CatalogRowError {
	return &CatalogRowError{File: file, Row: row, Field: field, Message: message}
}

// SchemaError reports a roster document that violates the expected
// army > detachment > squad > item nesting. Path names the offending node.
type SchemaError struct {
	File    string
	Path    string
	Message string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	switch {
	case e.File != "" && e.Path != "":
		return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	default:
		return e.Message
	}
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(file, path, message string) *SchemaError {
	return &SchemaError{File: file, Path: path, Message: message}
}

// UnknownReferenceError reports a roster name reference with no entry in
// the relevant catalog. This is the primary expected failure mode for
// hand-edited data, so Path must pinpoint the exact roster location.
type UnknownReferenceError struct {
	Name    string
	Catalog string // catalog kind searched: "item", "formation", "ability"
	Path    string
}

// Error implements the error interface
func (e *UnknownReferenceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no %s %q in catalog (at %s)", e.Catalog, e.Name, e.Path)
	}
	return fmt.Sprintf("no %s %q in catalog", e.Catalog, e.Name)
}

// Is implements errors.Is support
func (e *UnknownReferenceError) Is(target error) bool {
	return target == ErrUnknownReference
}

// NewUnknownReferenceError creates a new UnknownReferenceError
func NewUnknownReferenceError(name, catalog, path string) *UnknownReferenceError {
	return &UnknownReferenceError{Name: name, Catalog: catalog, Path: path}
}

// CostOverrideError reports an invalid per-node cost override or
// quantity multiplier in a roster.
type CostOverrideError struct {
	Path    string
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *CostOverrideError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid %s %v at %s: %s", e.Field, e.Value, e.Path, e.Message)
	}
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}

// Is implements errors.Is support
func (e *CostOverrideError) Is(target error) bool {
	return target == ErrInvalidOverride
}

// NewCostOverrideError creates a new CostOverrideError
func NewCostOverrideError(path, field string, value any, message string) *CostOverrideError {
	return &CostOverrideError{Path: path, Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "walk"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// RosterError wraps any failure while processing one roster file, so
// batch callers can report which input file failed.
type RosterError struct {
	File string
	Err  error
}

// Error implements the error interface
func (e *RosterError) Error() string {
	return fmt.Sprintf("roster %s: %v", e.File, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *RosterError) Unwrap() error {
	return e.Err
}

// NewRosterError creates a new RosterError
func NewRosterError(file string, err error) *RosterError {
	return &RosterError{File: file, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateEntry checks if an error is a duplicate entry error
func IsDuplicateEntry(err error) bool {
	return errors.Is(err, ErrDuplicateEntry)
}

// IsMalformedRow checks if an error is a malformed catalog row error
func IsMalformedRow(err error) bool {
	return errors.Is(err, ErrMalformedRow)
}

// IsSchemaError checks if an error is a roster schema error
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsUnknownReference checks if an error is an unknown reference error
func IsUnknownReference(err error) bool {
	return errors.Is(err, ErrUnknownReference)
}

// IsInvalidOverride checks if an error is an invalid cost override error
func IsInvalidOverride(err error) bool {
	return errors.Is(err, ErrInvalidOverride)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapRoster wraps an error as a RosterError
func WrapRoster(file string, err error) error {
	if err == nil {
		return nil
	}
	return NewRosterError(file, err)
}
