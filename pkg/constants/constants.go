// Package constants provides shared constants used throughout the muster
// codebase: directory conventions, file permissions, and catalog file names.
package constants

// Directory conventions matching the repository layout the tool expects
// when run without arguments.
const (
	// DefaultDataDir is the directory holding catalog CSV tables
	DefaultDataDir = "data"

	// DefaultListsDir is the directory holding army roster YAML files
	DefaultListsDir = "lists"

	// DefaultOutputDir is the directory rendered documents are written to
	DefaultOutputDir = "html"
)

// Catalog table file names inside the data directory
const (
	ModelsFile     = "models.csv"
	WeaponsFile    = "weapons.csv"
	WargearFile    = "wargear.csv"
	AbilitiesFile  = "abilities.csv"
	FormationsFile = "formations.csv"
	PsykersFile    = "psykers.csv"
)

// IndexFile is the name of the rendered index document.
const IndexFile = "index.html"

// StylesheetFile is the name of the stylesheet copied next to rendered
// documents.
const StylesheetFile = "style.css"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
