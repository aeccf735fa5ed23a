// Package web embeds the HTML templates and static assets served by the app.
package web

import (
	"embed"         // Embedded assets
	"encoding/json" // Record pretty printing
	"fmt"           // Value formatting
	"html/template" // HTML templates
	"io/fs"         // Sub filesystems
	"net/http"      // File serving
	"strings"       // Class names
	"time"          // Timestamp formatting
)

//go:embed templates/*.tmpl static
var files embed.FS

// FuncMap returns the helpers available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"toJSON":     toJSON,
		"formatTime": formatTime,
		"slug":       slug,
	}
}

// Templates parses every embedded page template
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(files, "templates/*.tmpl")
}

// Static serves the embedded static directory
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err) // static is embedded at compile time
	}
	return http.FS(sub)
}

// toJSON renders v as indented JSON for the record textareas
func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil || string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

// slug turns an enum value like "Under Investigation" into a CSS class
func slug(v any) string {
	return strings.ToLower(strings.ReplaceAll(fmt.Sprint(v), " ", "-"))
}
