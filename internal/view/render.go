package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Tab keys double as element ids in the page markup.
const (
	TabToday    = "today"
	TabUpcoming = "upcoming"
)

// Tab is one titled list of cards.
type Tab struct {
	Key    string
	Title  string
	Count  int
	Active bool
	Cards  []Card
}

// Page is everything the terminal part of the page needs.
type Page struct {
	Phase   string
	Message string
	Tabs    []Tab
}

// BuildPage turns a resolved state into the page model. A state still
// Loading yields a page with no tabs.
func BuildPage(state *FetchState, now time.Time, loc *time.Location) Page {
	page := Page{Phase: state.Phase().String()}
	switch state.Phase() {
	case PhaseFailed:
		page.Message = state.Message()
	case PhaseLoaded:
		b := Split(state.Matches(), now, loc)
		page.Tabs = []Tab{
			{Key: TabToday, Title: "Today", Count: len(b.Today), Active: true, Cards: NewCards(b.Today, loc)},
			{Key: TabUpcoming, Title: "Upcoming", Count: len(b.Upcoming), Cards: NewCards(b.Upcoming, loc)},
		}
	}
	return page
}

// Renderer writes the match page in two steps so the loading indicator can
// reach the browser before the fetch completes.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustRenderer is NewRenderer for package-level wiring; the templates are compiled in.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// WriteLoading writes the document head and the loading indicator.
func (r *Renderer) WriteLoading(w io.Writer) error {
	if err := r.tmpl.ExecuteTemplate(w, "open", nil); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "loading", nil)
}

// WriteResult writes the terminal view and closes the document.
func (r *Renderer) WriteResult(w io.Writer, page Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "result", page); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "close", nil)
}

// Assets exposes the stylesheet and placeholder crest, rooted at the assets directory.
func Assets() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
