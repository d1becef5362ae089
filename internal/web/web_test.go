package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	for _, name := range []string{
		"pages/home.html", "pages/venues.html", "pages/artists.html",
		"pages/search_venues.html", "pages/search_artists.html",
		"pages/show_venue.html", "pages/show_artist.html", "pages/shows.html",
		"forms/new_venue.html", "forms/edit_venue.html",
		"forms/new_artist.html", "forms/edit_artist.html", "forms/new_show.html",
		"errors/404.html", "errors/500.html",
	} {
		if tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}
}

func TestHomeRendersFlashes(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	var buf bytes.Buffer
	data := map[string]any{"flashes": []string{"Show was successfully listed!"}}
	if err := tmpl.ExecuteTemplate(&buf, "pages/home.html", data); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "Show was successfully listed!") {
		t.Error("flash message missing from home page")
	}
}

func TestDatetimeFunc(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates() error = %v", err)
	}
	probe, err := tmpl.New("probe").Parse(`{{datetime .}}|{{datetime . "full"}}`)
	if err != nil {
		t.Fatalf("parse probe: %v", err)
	}
	var buf bytes.Buffer
	if err := probe.Execute(&buf, "2019-05-21 21:30:00"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "Tue 05, 21, 2019 9:30PM|Tuesday May, 21, 2019 at 9:30PM"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestContains(t *testing.T) {
	if !contains([]string{"Jazz", "Rock"}, "Rock") {
		t.Error("contains() = false for present value")
	}
	if contains(nil, "Rock") {
		t.Error("contains(nil) = true")
	}
}
