package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

const (
	PageES = "es/index.html"
	PageEN = "en/index.html"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every landing page. Each file defines itself under its
// path relative to templates/, e.g. "en/index.html".
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templatesFS, "templates/*/*.html")
}

func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded at build time; this cannot fail at runtime
		panic(err)
	}
	return http.FS(sub)
}
