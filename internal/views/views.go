package views

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"fyyur/internal/services"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// Layout wraps every page.
const Layout = "layouts/main"

const (
	fullFormat   = "Monday January, 2, 2006 at 3:04PM"
	mediumFormat = "Mon 01, 02, 2006 3:04PM"
)

// New returns the HTML engine for the embedded templates. Times are
// displayed in loc.
func New(loc *time.Location) *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("datetime", func(t time.Time, format string) string {
		return FormatDateTime(t, format, loc)
	})
	engine.AddFunc("hasGenre", func(genres []string, genre string) bool {
		for _, g := range genres {
			if g == genre {
				return true
			}
		}
		return false
	})
	engine.AddFunc("stateChoices", func() []string { return services.States })
	engine.AddFunc("genreChoices", func() []string { return services.GenreChoices })
	return engine
}

// FormatDateTime renders t in loc. format is "full", "medium" or a Go layout.
func FormatDateTime(t time.Time, format string, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	switch format {
	case "full":
		format = fullFormat
	case "medium", "":
		format = mediumFormat
	}
	return t.In(loc).Format(format)
}
