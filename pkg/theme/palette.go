package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/facet-ui/facet/pkg/dom"
)

// Palette is a named set of CSS custom properties, loaded from a YAML
// palette file:
//
//	palettes:
//	  - name: dusk
//	    vars:
//	      surface: "#1d2021"
//	      accent: "#d65d0e"
type Palette struct {
	Name string            `yaml:"name"`
	Vars map[string]string `yaml:"vars"`
}

type paletteFile struct {
	Palettes []Palette `yaml:"palettes"`
}

// LoadPalettes reads a YAML palette file.
func LoadPalettes(path string) ([]Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePalettes(data)
}

// ParsePalettes parses YAML palette data.
func ParsePalettes(data []byte) ([]Palette, error) {
	var f paletteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing palettes: %w", err)
	}
	for _, p := range f.Palettes {
		if p.Name == "" {
			return nil, fmt.Errorf("palette without a name")
		}
	}
	return f.Palettes, nil
}

// Apply stamps the palette's variables onto the document root as CSS custom
// properties plus a data-palette marker. Variables are emitted sorted so
// the style attribute is deterministic.
func (p Palette) Apply(doc *dom.Document) {
	keys := make([]string, 0, len(p.Vars))
	for k := range p.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "--%s: %s; ", k, p.Vars[k])
	}
	root := doc.Root()
	root.SetAttr("data-palette", p.Name)
	root.SetAttr("style", strings.TrimSpace(sb.String()))
}
