// Package embedded carries the built-in starter data compiled into the
// binary: a small reference catalog, sample army lists, the document
// templates, and the print stylesheet.
package embedded

import (
	"embed"
)

// FS embeds the starter catalog tables, sample lists, templates, and
// stylesheet at build time.
//
//go:embed data/* lists/* templates/* style/*
var FS embed.FS
