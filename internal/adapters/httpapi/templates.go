package httpapi

import (
	"embed"
	"html/template"
	"path"
	"time"
)

//go:embed templates
var templateFS embed.FS

// loadTemplates parses every page and partial. Each page file defines a
// template named after its path, e.g. "posts/index.html".
func loadTemplates(mediaURL string) (*template.Template, error) {
	funcs := template.FuncMap{
		"media": func(rel string) string { return path.Join("/", mediaURL, rel) },
		"date":  func(t time.Time) string { return t.Format("2 Jan 2006") },
	}
	return template.New("yatube").Funcs(funcs).ParseFS(templateFS, "templates/*/*.html")
}
