// Package render turns a resume record into a standalone HTML document for
// one of the fixed visual variants. Rendering is pure: the same record always
// produces the same bytes, and partial records degrade to blanks rather than
// erroring.
package render

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Variants lists the recognized template identifiers.
func Variants() []string {
	return []string{"professional", "modern"}
}

func isVariant(name string) bool {
	for _, v := range Variants() {
		if v == name {
			return true
		}
	}
	return false
}
