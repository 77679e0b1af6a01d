package web

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/ops"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "workouts", "fresh", "progression"
}

// HistoryPageData is the template data for the workout list page.
type HistoryPageData struct {
	PageData
	Weeks []analytics.WeekGroup
	Count int
}

// DetailPageData is the template data for the session detail page.
type DetailPageData struct {
	PageData
	Session      *ops.DetailOutput
	RenderedHTML template.HTML
}

// FreshPageData is the template data for the freshness page.
type FreshPageData struct {
	PageData
	Fresh              []string
	AllTrainedRecently bool
}

// ProgressionPageData is the template data for the progression page.
type ProgressionPageData struct {
	PageData
	Exercise string
	Series   analytics.Series
	HasQuery bool
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"displayDate": displayDate,
		"deref":       derefInt,
		"hasValue":    hasIntValue,
		"joinMuscles": func(m []string) string { return strings.Join(m, ", ") },
	}

	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"history":     "history.html",
		"detail":      "detail.html",
		"fresh":       "fresh.html",
		"progression": "progression.html",
		"error":       "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders an error response with content negotiation.
func (r *Renderer) renderError(w http.ResponseWriter, req *http.Request, err error) {
	var vErr *errors.VaultError
	if !stderrors.As(err, &vErr) {
		vErr = errors.NewInternal(err)
	}

	status := vErr.Status
	message := vErr.Message

	if strings.Contains(req.Header.Get("Accept"), "application/json") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    string(vErr.Code),
				"message": message,
				"status":  status,
			},
		})
		return
	}

	r.renderPageStatus(w, status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", status),
			Version: r.version,
		},
		StatusCode: status,
		Message:    message,
	})
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// displayDate formats a date as "Feb 11, 2026" for page templates.
func displayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// derefInt dereferences an optional effort value, 0 if unset.
func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func hasIntValue(v *int) bool { return v != nil }
