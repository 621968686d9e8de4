package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/moltinginstar/tekosu/internal/legalese"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// AppTitle is shown in the page header and tab.
const AppTitle = "Tekosu"

type pageData struct {
	Title              string
	Tagline            string
	SliderMin          float64
	SliderMax          float64
	SliderStep         float64
	DefaultTemperature float64
	DefaultTopP        float64
}

// Page serves the single page. Everything else happens in /api/render.
func Page() http.HandlerFunc {
	data := pageData{
		Title:              AppTitle,
		Tagline:            "Terms and conditions made easy: unravel the fine print in just a few keystrokes.",
		SliderMin:          legalese.SliderMin,
		SliderMax:          legalese.SliderMax,
		SliderStep:         legalese.SliderStep,
		DefaultTemperature: legalese.DefaultTemperature,
		DefaultTopP:        legalese.DefaultTopP,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var buf bytes.Buffer
		if err := pageTemplate.Execute(&buf, data); err != nil {
			slog.Error("render page", "error", err)
			writeError(w, http.StatusInternalServerError, "page unavailable")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}
