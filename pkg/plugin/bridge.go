package plugin

import "github.com/facet-ui/facet/pkg/dom"

// Bridge owns the single widget handle of one host element. It is the only
// place a host stores a handle, which makes the disposal invariants local:
// at most one live handle at a time, disposal idempotent, and the stored
// reference cleared before the widget's own teardown runs so an in-flight
// transition callback can never observe a disposed handle as live.
type Bridge struct {
	registry *Registry
	widget   string
	node     *dom.Node
	handle   Handle
}

// NewBridge creates a bridge for the named widget. The bridge is inert
// until Bind attaches it to a generated markup node.
func NewBridge(registry *Registry, widget string) *Bridge {
	return &Bridge{registry: registry, widget: widget}
}

// Bind points the bridge at the node the widget controls. Rebinding to a
// different node disposes any handle on the old one first.
func (b *Bridge) Bind(node *dom.Node) {
	if b.node == node {
		return
	}
	b.Dispose()
	b.node = node
}

// Node returns the currently bound node, or nil.
func (b *Bridge) Node() *dom.Node { return b.node }

// GetOrCreate returns the bridge's handle, constructing it on first use.
// Returns nil when the bridge is unbound, the registry is absent, or the
// toolkit has no constructor for the widget.
func (b *Bridge) GetOrCreate(opts Options) Handle {
	if b.handle != nil {
		return b.handle
	}
	if b.registry == nil || b.node == nil || b.widget == "" {
		return nil
	}
	b.handle = b.registry.GetOrCreate(b.widget, b.node, opts)
	return b.handle
}

// Existing returns the current handle without constructing one.
func (b *Bridge) Existing() Handle { return b.handle }

// Live reports whether h is the bridge's current handle. Transition
// completion callbacks use this to check that their handle was not disposed
// while the transition was in flight.
func (b *Bridge) Live(h Handle) bool {
	return h != nil && h == b.handle
}

// Dispose tears down the current handle. Safe to call with no handle. The
// stored reference is cleared before the widget's Dispose runs, so any
// callback fired during teardown fails the Live check.
func (b *Bridge) Dispose() {
	h := b.handle
	if h == nil {
		return
	}
	b.handle = nil
	if b.registry != nil {
		b.registry.release(b.widget, b.node)
	}
	h.Dispose()
}
