package element

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/plugin"
)

// SlotAttr is the marker attribute authored children use to pick a region.
const SlotAttr = "slot"

// tagPrefix namespaces generated host element tags.
const tagPrefix = "facet-"

// EmptyPolicy decides what happens to a region that received no children
// and has no generated content after redistribution.
type EmptyPolicy uint8

const (
	// RemoveWhenEmpty prunes the region node from the generated markup.
	RemoveWhenEmpty EmptyPolicy = iota
	// KeepWhenEmpty leaves the region in place; it is structurally required.
	KeepWhenEmpty
)

// ContentMode decides how slotted children combine with a region's
// generated default content.
type ContentMode uint8

const (
	// ModeAppend adds slotted children after any generated content.
	ModeAppend ContentMode = iota
	// ModeOverride clears the generated content before the first slotted
	// child is inserted; later children for the same region append.
	ModeOverride
)

// Region declares one named target region of a component's markup.
type Region struct {
	Name  string
	Empty EmptyPolicy
	Mode  ContentMode
}

// Definition is the static description of one component kind. Component
// packages build a Definition once and hand it to New or Adopt per
// instance.
type Definition struct {
	// Name is the component kind, e.g. "dialog". The host element tag is
	// derived from it ("facet-dialog").
	Name string

	// Widget names the toolkit constructor this component delegates to.
	// Empty means the component is purely structural.
	Widget string

	// Regions are the named targets for slotted children. DefaultRegion
	// must name one of them; it receives unmarked and unmatched children.
	Regions       []Region
	DefaultRegion string

	// Build generates the inner markup for a host. It registers region
	// nodes via Host.MarkRegion as it builds.
	Build func(h *Host) *dom.Node

	// PluginOptions produces the widget configuration, read from host
	// attributes at handle-creation time. May be nil.
	PluginOptions func(h *Host) plugin.Options

	// Setup runs at the end of materialization, after redistribution.
	// Components use it for shared asset injection. May be nil.
	Setup func(h *Host)
}

// TagName returns the host element tag for this component kind.
func (d *Definition) TagName() string {
	return tagPrefix + d.Name
}

// region returns the declared region by name, or nil.
func (d *Definition) region(name string) *Region {
	for i := range d.Regions {
		if d.Regions[i].Name == name {
			return &d.Regions[i]
		}
	}
	return nil
}
