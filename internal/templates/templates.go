// Package templates holds the HTML pages served next to the version
// endpoint, embedded so the binary runs from any directory.
package templates

import (
	"embed"
	"html/template"
	"io/fs"
)

// Pattern matches every page template
const Pattern = "*.go.html"

// FS holds the built-in pages
//
//go:embed *.go.html
var FS embed.FS

// Parse loads every page in fsys into one set, named by file name. Pass [FS]
// for the built-in pages.
func Parse(fsys fs.FS) (*template.Template, error) {
	return template.New("").ParseFS(fsys, Pattern)
}
