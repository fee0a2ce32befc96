package sitemap

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func TestBuild(t *testing.T) {
	data, err := Build("https://jless.io/", []string{"/", "/user-guide.html", "releases.html", "/user-guide.html"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		t.Fatalf("parse sitemap: %v", err)
	}

	root := doc.SelectElement("urlset")
	if root == nil {
		t.Fatalf("expected urlset root in %s", data)
	}
	if got := root.SelectAttrValue("xmlns", ""); got != Namespace {
		t.Fatalf("unexpected namespace %q", got)
	}

	var locs []string
	for _, u := range root.SelectElements("url") {
		locs = append(locs, u.SelectElement("loc").Text())
	}
	want := []string{"https://jless.io/", "https://jless.io/user-guide.html", "https://jless.io/releases.html"}
	if strings.Join(locs, ",") != strings.Join(want, ",") {
		t.Fatalf("locations: want %v, got %v", want, locs)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatalf("expected xml declaration, got %q", data)
	}
}

func TestBuild_EscapesLocations(t *testing.T) {
	data, err := Build("https://example.com", []string{"/a&b.html"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(string(data), "<loc>https://example.com/a&amp;b.html</loc>") {
		t.Fatalf("expected escaped location, got %s", data)
	}
}

func TestBuild_InvalidBaseURL(t *testing.T) {
	for _, base := range []string{"", "   ", "not a url", "/relative"} {
		if _, err := Build(base, []string{"/"}); err == nil {
			t.Fatalf("expected error for base %q", base)
		}
	}
}
