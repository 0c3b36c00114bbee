package theme

import (
	"path/filepath"
	"testing"

	"github.com/facet-ui/facet/pkg/dom"
)

func TestManager(t *testing.T) {
	t.Run("stamps root on construction", func(t *testing.T) {
		doc := dom.NewDocument()
		m := NewManager(doc, NewMemoryStore(), NewStaticSource(SchemeLight))
		defer m.Close()

		if got := doc.Root().AttrOr("data-theme", ""); got != "light" {
			t.Errorf("data-theme = %q, want light", got)
		}
	})

	t.Run("restores persisted preference", func(t *testing.T) {
		store := NewMemoryStore()
		store.Set(DefaultStorageKey, "dark")
		doc := dom.NewDocument()
		m := NewManager(doc, store, NewStaticSource(SchemeLight))
		defer m.Close()

		if m.Scheme() != SchemeDark {
			t.Errorf("scheme = %v, want dark", m.Scheme())
		}
		if got := doc.Root().AttrOr("data-theme", ""); got != "dark" {
			t.Errorf("data-theme = %q, want dark", got)
		}
	})

	t.Run("malformed persisted value falls back to auto", func(t *testing.T) {
		store := NewMemoryStore()
		store.Set(DefaultStorageKey, "chartreuse")
		m := NewManager(dom.NewDocument(), store, NewStaticSource(SchemeDark))
		defer m.Close()

		if m.Scheme() != SchemeAuto {
			t.Errorf("scheme = %v, want auto", m.Scheme())
		}
		if m.Effective() != SchemeDark {
			t.Errorf("effective = %v, want system dark", m.Effective())
		}
	})

	t.Run("set persists and broadcasts", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewManager(dom.NewDocument(), store, NewStaticSource(SchemeLight))
		defer m.Close()

		var seen []Scheme
		cancel := m.Subscribe(func(s Scheme) { seen = append(seen, s) })
		defer cancel()

		m.Set(SchemeDark)

		if v, _ := store.Get(DefaultStorageKey); v != "dark" {
			t.Errorf("persisted = %q, want dark", v)
		}
		if len(seen) != 1 || seen[0] != SchemeDark {
			t.Errorf("broadcast = %v, want [dark]", seen)
		}
	})

	t.Run("toggle flips effective scheme", func(t *testing.T) {
		m := NewManager(dom.NewDocument(), NewMemoryStore(), NewStaticSource(SchemeDark))
		defer m.Close()

		// auto resolving to dark; toggle selects light explicitly.
		m.Toggle()
		if m.Scheme() != SchemeLight {
			t.Errorf("scheme = %v, want light", m.Scheme())
		}
		m.Toggle()
		if m.Scheme() != SchemeDark {
			t.Errorf("scheme = %v, want dark", m.Scheme())
		}
	})

	t.Run("system change applies while auto", func(t *testing.T) {
		source := NewStaticSource(SchemeLight)
		doc := dom.NewDocument()
		m := NewManager(doc, NewMemoryStore(), source)
		defer m.Close()

		source.Flip(SchemeDark)
		if got := doc.Root().AttrOr("data-theme", ""); got != "dark" {
			t.Errorf("data-theme = %q, want dark", got)
		}
	})

	t.Run("system change ignored after explicit choice", func(t *testing.T) {
		source := NewStaticSource(SchemeLight)
		doc := dom.NewDocument()
		m := NewManager(doc, NewMemoryStore(), source)
		defer m.Close()

		m.Set(SchemeLight)
		source.Flip(SchemeDark)
		if got := doc.Root().AttrOr("data-theme", ""); got != "light" {
			t.Errorf("data-theme = %q, want light", got)
		}
	})

	t.Run("close cancels source subscription", func(t *testing.T) {
		source := NewStaticSource(SchemeLight)
		doc := dom.NewDocument()
		m := NewManager(doc, NewMemoryStore(), source)
		m.Close()

		source.Flip(SchemeDark)
		if got := doc.Root().AttrOr("data-theme", ""); got != "light" {
			t.Errorf("data-theme = %q, want light after Close", got)
		}
	})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := s.Set("facet.theme", "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Reopen and read back.
	s2, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok := s2.Get("facet.theme"); !ok || v != "dark" {
		t.Errorf("Get = %q %v, want dark true", v, ok)
	}
}

func TestPalettes(t *testing.T) {
	t.Run("parse and apply", func(t *testing.T) {
		data := []byte(`
palettes:
  - name: dusk
    vars:
      accent: "#d65d0e"
      surface: "#1d2021"
`)
		palettes, err := ParsePalettes(data)
		if err != nil {
			t.Fatalf("ParsePalettes: %v", err)
		}
		if len(palettes) != 1 || palettes[0].Name != "dusk" {
			t.Fatalf("palettes = %+v", palettes)
		}

		doc := dom.NewDocument()
		palettes[0].Apply(doc)
		if got := doc.Root().AttrOr("data-palette", ""); got != "dusk" {
			t.Errorf("data-palette = %q", got)
		}
		want := "--accent: #d65d0e; --surface: #1d2021;"
		if got := doc.Root().AttrOr("style", ""); got != want {
			t.Errorf("style = %q, want %q", got, want)
		}
	})

	t.Run("nameless palette rejected", func(t *testing.T) {
		if _, err := ParsePalettes([]byte("palettes:\n  - vars: {x: y}\n")); err == nil {
			t.Error("want error for nameless palette")
		}
	})

	t.Run("bad yaml rejected", func(t *testing.T) {
		if _, err := ParsePalettes([]byte("palettes: [")); err == nil {
			t.Error("want parse error")
		}
	})
}
