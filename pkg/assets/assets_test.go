package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/facet-ui/facet/pkg/dom"
)

func TestManifest(t *testing.T) {
	t.Run("resolve known entry", func(t *testing.T) {
		m := NewManifest()
		m.Set("toolkit.css", "toolkit.abc123.css")
		if got := m.Resolve("toolkit.css"); got != "toolkit.abc123.css" {
			t.Errorf("Resolve = %q", got)
		}
	})

	t.Run("unknown entry passes through", func(t *testing.T) {
		m := NewManifest()
		if got := m.Resolve("missing.css"); got != "missing.css" {
			t.Errorf("Resolve = %q, want missing.css", got)
		}
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.json")
		if err := os.WriteFile(path, []byte(`{"a.js":"a.1.js"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		m, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if m.Len() != 1 || m.Resolve("a.js") != "a.1.js" {
			t.Error("manifest content wrong")
		}
	})

	t.Run("load missing file errors", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("want error")
		}
	})
}

func TestResolver(t *testing.T) {
	m := NewManifest()
	m.Set("toolkit.js", "toolkit.9f.min.js")

	t.Run("manifest resolver applies prefix", func(t *testing.T) {
		r := NewResolver(m, "/public/")
		if got := r.Asset("toolkit.js"); got != "/public/toolkit.9f.min.js" {
			t.Errorf("Asset = %q", got)
		}
	})

	t.Run("passthrough keeps name", func(t *testing.T) {
		r := NewPassthroughResolver("/public/")
		if got := r.Asset("toolkit.js"); got != "/public/toolkit.js" {
			t.Errorf("Asset = %q", got)
		}
	})
}

func TestInjector(t *testing.T) {
	t.Run("stylesheet injected once", func(t *testing.T) {
		doc := dom.NewDocument()
		inj := NewInjector(doc, nil)

		// Three instances of the same component each ensure the shared
		// stylesheet during one materialization pass.
		for i := 0; i < 3; i++ {
			inj.EnsureStylesheet("toolkit.css")
		}

		links, err := dom.QueryAll(doc.Root(), `link[rel="stylesheet"]`)
		if err != nil {
			t.Fatal(err)
		}
		if len(links) != 1 {
			t.Fatalf("links = %d, want 1", len(links))
		}
	})

	t.Run("distinct assets both injected", func(t *testing.T) {
		doc := dom.NewDocument()
		inj := NewInjector(doc, nil)
		inj.EnsureStylesheet("a.css")
		inj.EnsureStylesheet("b.css")

		if got := len(doc.Head().Children); got != 2 {
			t.Errorf("head children = %d, want 2", got)
		}
	})

	t.Run("script dedup uses resolved path", func(t *testing.T) {
		m := NewManifest()
		m.Set("toolkit.js", "toolkit.1.js")
		doc := dom.NewDocument()
		inj := NewInjector(doc, NewResolver(m, "/p/"))

		a := inj.EnsureScript("toolkit.js")
		b := inj.EnsureScript("toolkit.js")

		if a != b {
			t.Error("second ensure should return the existing tag")
		}
		if got := a.AttrOr("src", ""); got != "/p/toolkit.1.js" {
			t.Errorf("src = %q", got)
		}
	})
}
