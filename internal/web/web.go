// Package web embeds the HTML templates and their helper functions.
package web

import (
	"embed"
	"html/template"

	"Fyyur/internal/utils/format"
)

//go:embed templates
var files embed.FS

// GenreChoices are offered by the venue and artist forms.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre",
	"Pop", "Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// FuncMap is shared by every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime":     format.TemplateFilter,
		"genreChoices": func() []string { return GenreChoices },
		"contains":     contains,
	}
}

// Templates parses every embedded page. Pages are addressed by their path
// under templates/, e.g. "pages/home.html".
func Templates() (*template.Template, error) {
	return template.New("fyyur").Funcs(FuncMap()).ParseFS(files,
		"templates/layouts/*.html",
		"templates/pages/*.html",
		"templates/forms/*.html",
		"templates/errors/*.html",
	)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
