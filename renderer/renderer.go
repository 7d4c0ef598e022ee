// Package renderer builds the markdown reports shown by the kt command
// line. Reports are plain markdown strings; the caller decides how to
// print them.
package renderer

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render one of the embedded report
// templates.
func renderTemplate(name, file string, data any) string {
	content, err := templates.ReadFile("templates/" + file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}

// quantity formats a quantity with its unit symbol, trimming insignificant
// zeros.
func quantity(q float64, unit string) string {
	return strconv.FormatFloat(q, 'f', -1, 64) + " " + unit
}
