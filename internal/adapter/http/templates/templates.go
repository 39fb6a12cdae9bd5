// Package templates holds the server-rendered pages.
package templates

import (
	"embed"
	"html/template"
	"time"

	"github.com/IgorSouzaLima/rjlima/internal/domain/entities"
	"github.com/IgorSouzaLima/rjlima/internal/domain/fiscalkey"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"formatKey": fiscalkey.Format,
	"displayDate": func(s string) string {
		t, err := entities.ParseDate(s)
		if err != nil {
			return "-"
		}
		return entities.DisplayDate(&t)
	},
	"statusColor": entities.StatusColor,
	"statusIcon":  entities.StatusIcon,
	"year":        func() int { return time.Now().Year() },
}

// Load parses every page. Pages are addressed by file name (e.g. "tracking.html").
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(files, "html/*.html")
}

func Must() *template.Template {
	return template.Must(Load())
}
