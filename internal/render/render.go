/*
Package render turns gallery view models into HTML.

Templates are embedded and parsed with html/template, which escapes every
value according to its context. View models must not contain markup.
*/
package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/photoprism/gallery/internal/viewer"
)

// PageTemplate is the name of the gallery page template.
const PageTemplate = "page"

//go:embed templates/*.gohtml
var files embed.FS

var templates = template.Must(template.New("").ParseFS(files, "templates/*.gohtml"))

// Page writes the gallery page to w.
func Page(w io.Writer, page viewer.Page) error {
	return templates.ExecuteTemplate(w, PageTemplate, page)
}
