package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/dom/champion-rotations/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"date":    formatDate,
		"version": formatVersion,
	}).ParseFS(templatesFS, "templates/*.html"),
)

// IndexPage is the data behind the current rotation page.
type IndexPage struct {
	RegularRotation []domain.PresentationChampion
	NewbieRotation  []domain.PresentationChampion
	RotationInfo    *domain.RotationInfo
	Error           string
}

// HistoryPage is the data behind the history page.
type HistoryPage struct {
	HistoryData []domain.HistoryEntry
	Error       string
}

// Render executes the named template into a buffer first so a template
// failure never leaves a half-written page behind.
func Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

func formatVersion(v *string) string {
	if v == nil || *v == "" {
		return "unknown"
	}
	return *v
}
