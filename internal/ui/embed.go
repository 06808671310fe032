// Package ui embeds the HTML form served at /.
package ui

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// IndexTemplate is the name of the form page template.
const IndexTemplate = "index.html"

// Templates parses the embedded templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templates, "templates/*.html")
}
