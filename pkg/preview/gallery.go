// Package preview serves a browsable gallery of the component collection.
//
// The gallery materializes one demo instance of every component into a
// shared document, renders it to HTML, and serves it over chi. A WebSocket
// live channel pushes freshly rendered markup whenever the theme changes,
// so open browsers follow scheme switches without reloading.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/facet-ui/facet/pkg/components"
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/render"
)

// demo builds a representative host for a component kind, with sample
// children exercising its regions.
type demo func(env *element.Env) *element.Host

// demos maps component names to their gallery builders.
func demos() map[string]demo {
	return map[string]demo{
		"alert": func(env *element.Env) *element.Host {
			return components.NewAlert(env,
				dom.Attr{Key: "variant", Value: "warning"},
				dom.Attr{Key: "dismissible", Value: true},
				dom.Strong("Heads up!"), dom.Text(" Something needs attention."),
			).Host
		},
		"collapse": func(env *element.Env) *element.Host {
			return components.NewCollapse(env,
				dom.Attr{Key: "expanded", Value: true},
				dom.P("Collapsible content."),
			).Host
		},
		"dialog": func(env *element.Env) *element.Host {
			return components.NewDialog(env,
				dom.TitleAttr("Example dialog"),
				dom.P("Dialog body."),
				dom.Button(dom.Slot("footer"), "Close"),
			).Host
		},
		"drawer": func(env *element.Env) *element.Host {
			return components.NewDrawer(env,
				dom.TitleAttr("Navigation"),
				dom.Attr{Key: "placement", Value: "end"},
				dom.P("Drawer body."),
			).Host
		},
		"dropdown": func(env *element.Env) *element.Host {
			return components.NewDropdown(env,
				dom.Attr{Key: "label", Value: "Actions"},
				dom.Li("Edit"), dom.Li("Delete"),
			).Host
		},
		"tabs": func(env *element.Env) *element.Host {
			return components.NewTabs(env,
				dom.Li(dom.Slot("tab"), "First"),
				dom.Div("First panel."),
				dom.Li(dom.Slot("tab"), "Second"),
				dom.Div("Second panel."),
			).Host
		},
		"toast": func(env *element.Env) *element.Host {
			return components.NewToast(env,
				dom.TitleAttr("Saved"),
				dom.Attr{Key: "delay", Value: "2500"},
				dom.Text("Your changes are safe."),
			).Host
		},
		"tooltip": func(env *element.Env) *element.Host {
			return components.NewTooltip(env,
				dom.Attr{Key: "text", Value: "More info"},
				dom.Span("hover me"),
			).Host
		},
	}
}

// Gallery owns the demo document and renders component pages.
type Gallery struct {
	env      *element.Env
	renderer *render.Renderer
	hosts    map[string]*element.Host
}

// NewGallery materializes one demo per component into the environment's
// document.
func NewGallery(env *element.Env, pretty bool) *Gallery {
	g := &Gallery{
		env:      env,
		renderer: render.New(render.Config{Pretty: pretty}),
		hosts:    make(map[string]*element.Host),
	}
	for name, build := range demos() {
		h := build(env)
		env.Doc.Body().AppendChild(h.Node())
		h.Connected()
		g.hosts[name] = h
	}
	env.Loop.FlushAll()
	return g
}

// Names returns the component names in stable order.
func (g *Gallery) Names() []string {
	names := make([]string, 0, len(g.hosts))
	for name := range g.hosts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Component renders one component's markup, or an error for unknown names.
func (g *Gallery) Component(name string) (string, error) {
	h, ok := g.hosts[name]
	if !ok {
		return "", fmt.Errorf("unknown component %q", name)
	}
	return g.renderer.ToString(h.Node())
}

// Index renders the full gallery page.
func (g *Gallery) Index() (string, error) {
	names := g.Names()
	markups := make(map[string]string, len(names))
	for _, name := range names {
		markup, err := g.Component(name)
		if err != nil {
			return "", err
		}
		markups[name] = markup
	}

	body := dom.Body(
		dom.H1("Facet components"),
		dom.P(dom.Class("gallery-count"), dom.Textf("%d components", len(names))),
		dom.Range(names, func(name string, _ int) *dom.Node {
			return dom.Section(dom.Class("gallery-item"),
				dom.H2(name), dom.Raw(markups[name]))
		}),
	)
	page := dom.Html(dom.Head(dom.Title("Facet gallery")), body)
	// Carry the live document's theme marker onto the page.
	if theme, ok := g.env.Doc.Root().Attr("data-theme"); ok {
		page.SetAttr("data-theme", theme)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>")
	if err := g.renderer.ToWriter(&sb, page); err != nil {
		return "", err
	}
	return sb.String(), nil
}
