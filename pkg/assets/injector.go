package assets

import (
	"github.com/facet-ui/facet/pkg/dom"
)

// Injector places shared assets into a document head idempotently. The
// dedup key is the resolved URL. Materialization is single-threaded, so
// the present-check and the insert cannot interleave: several component
// instances materializing in the same pass produce exactly one tag per
// asset.
type Injector struct {
	doc      *dom.Document
	resolver Resolver
}

// NewInjector creates an injector for the given document. A nil resolver
// leaves source paths untouched.
func NewInjector(doc *dom.Document, resolver Resolver) *Injector {
	if resolver == nil {
		resolver = NewPassthroughResolver("")
	}
	return &Injector{doc: doc, resolver: resolver}
}

// EnsureStylesheet injects <link rel="stylesheet" href=...> into the head
// unless a link with the same resolved href already exists. Returns the
// link element either way.
func (i *Injector) EnsureStylesheet(source string) *dom.Node {
	href := i.resolver.Asset(source)
	if existing := i.findIn("link", "href", href); existing != nil {
		return existing
	}
	link := dom.Link(dom.Rel("stylesheet"), dom.Href(href))
	i.doc.Head().AppendChild(link)
	return link
}

// EnsureScript injects <script src=...> into the head unless a script with
// the same resolved src already exists.
func (i *Injector) EnsureScript(source string) *dom.Node {
	src := i.resolver.Asset(source)
	if existing := i.findIn("script", "src", src); existing != nil {
		return existing
	}
	script := dom.Script(dom.Src(src))
	i.doc.Head().AppendChild(script)
	return script
}

// findIn scans head children for tag with attr == value.
func (i *Injector) findIn(tag, attr, value string) *dom.Node {
	for _, c := range i.doc.Head().Children {
		if c.Kind == dom.KindElement && c.Tag == tag && c.AttrOr(attr, "") == value {
			return c
		}
	}
	return nil
}
