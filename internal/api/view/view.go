package view

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"outfit_advisor/internal/domain/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// PageData carries everything the page templates know how to show.
type PageData struct {
	Username       string
	Error          string
	Request        *model.OutfitRequest
	Recommendation *model.Recommendation
}

// Render writes the named template with the given status. A template error at
// this point can only be logged; headers are already gone.
func Render(w http.ResponseWriter, status int, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render template %s: %v", name, err)
	}
}
