// Package views holds the server-rendered pages and their static assets.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Abdulwakil1/Creatorverse/core"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Funcs are the helpers available to every page.
var Funcs = template.FuncMap{
	"upper": core.DisplayName,
}

// Templates parses every page. Each file is addressed by its base name,
// e.g. "creator_view.html".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs).ParseFS(templatesFS, "templates/*.html"))
}

// Static serves the stylesheet and icons under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
