package element

import (
	"log/slog"

	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/plugin"
)

// lifecycleState is the host's materialization state machine: one forward
// transition created -> materializing -> ready, reversed only by an
// explicit ForceRender. The transient materializing state makes re-entrant
// attach hooks during the build itself detectable.
type lifecycleState uint8

const (
	stateCreated lifecycleState = iota
	stateMaterializing
	stateReady
)

func (s lifecycleState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateMaterializing:
		return "materializing"
	case stateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// regionSlot is a live region within one host's generated markup.
type regionSlot struct {
	decl       *Region
	node       *dom.Node
	received   int
	overridden bool // generated content already cleared
}

// Host is one live component instance: a host element plus the machinery
// that materializes and maintains its inner markup.
type Host struct {
	def    *Definition
	env    *Env
	node   *dom.Node
	root   *dom.Node
	state  lifecycleState
	bridge *plugin.Bridge

	// original holds the authored children, captured exactly once before
	// the host's markup is first replaced. ForceRender redistributes the
	// same capture.
	original []*dom.Node
	captured bool

	regions map[string]*regionSlot
	logger  *slog.Logger
}

// New creates a detached host element for the component kind.
func New(def *Definition, env *Env, args ...any) *Host {
	node := dom.El(def.TagName(), args...)
	return Adopt(def, env, node)
}

// Adopt wraps an existing element (typically parsed from authored HTML) as
// a host. Adopting the same node twice returns the existing host, so batch
// initialization passes are idempotent.
func Adopt(def *Definition, env *Env, node *dom.Node) *Host {
	if existing := env.hostOf(node); existing != nil {
		return existing
	}
	h := &Host{
		def:    def,
		env:    env,
		node:   node,
		bridge: plugin.NewBridge(env.Plugins, def.Widget),
		logger: env.Logger.With(slog.String("component", def.Name)),
	}
	env.track(h)
	return h
}

// Node returns the host element.
func (h *Host) Node() *dom.Node { return h.node }

// Root returns the generated markup root, or nil before materialization.
func (h *Host) Root() *dom.Node { return h.root }

// Definition returns the component's static description.
func (h *Host) Definition() *Definition { return h.def }

// Env returns the host's environment.
func (h *Host) Env() *Env { return h.env }

// Ready reports whether the host has materialized.
func (h *Host) Ready() bool { return h.state == stateReady }

// Connected is the attach hook. The first call schedules materialization
// for the end of the current pass, after the host's own children have been
// parsed. Every later call, including re-attachment after Disconnected, is
// a no-op.
func (h *Host) Connected() {
	if h.state != stateCreated {
		return
	}
	h.env.Loop.Defer(h.materialize)
}

// Disconnected is the detach hook. It releases the widget handle so the
// toolkit can drop its listeners and timers, but keeps the materialized
// state: re-attachment must not rebuild or duplicate markup.
func (h *Host) Disconnected() {
	h.bridge.Dispose()
}

// EnsureReady materializes synchronously when the deferred pass has not run
// yet. Imperative operations call it first so they never no-op because of
// an ordering race with the deferred render.
func (h *Host) EnsureReady() {
	if h.state == stateCreated {
		h.materialize()
	}
}

// ForceRender rebuilds the markup to reflect current host attributes: it
// disposes the widget handle, resets the lifecycle, and re-materializes
// synchronously. The original child capture is redistributed again.
func (h *Host) ForceRender() {
	h.bridge.Dispose()
	h.state = stateCreated
	h.materialize()
}

// Dispose releases the widget handle. Markup is left intact; the host
// degrades to its static rendering. Safe to call repeatedly.
func (h *Host) Dispose() {
	h.bridge.Dispose()
}

// materialize builds the inner markup once. Marking the state is the very
// first action so a re-entrant attach during the build is a no-op.
func (h *Host) materialize() {
	if h.state != stateCreated {
		return
	}
	h.state = stateMaterializing

	if !h.captured {
		h.original = h.node.TakeChildren()
		h.captured = true
	} else {
		// Re-render: drop the stale generated tree. The original capture
		// is re-homed below; AppendChild detaches each node from the stale
		// subtree as it goes.
		h.node.ReplaceChildren()
	}

	h.regions = make(map[string]*regionSlot)
	root := h.def.Build(h)
	if root == nil {
		root = dom.Div()
	}
	dom.CopyAttrs(root, h.node)
	h.node.AppendChild(root)
	h.root = root

	h.redistribute()
	h.prune()

	if h.def.Setup != nil {
		h.def.Setup(h)
	}
	h.bridge.Bind(root)
	h.state = stateReady
}

// MarkRegion registers node as the target for the named region. Called by
// Definition.Build while generating markup; unknown names are ignored with
// a diagnostic.
func (h *Host) MarkRegion(name string, node *dom.Node) *dom.Node {
	decl := h.def.region(name)
	if decl == nil {
		h.logger.Debug("markup registered an undeclared region",
			slog.String("region", name))
		return node
	}
	h.regions[name] = &regionSlot{decl: decl, node: node}
	return node
}

// Region returns the live node of a named region, or nil when the region
// was pruned or never declared.
func (h *Host) Region(name string) *dom.Node {
	slot, ok := h.regions[name]
	if !ok {
		return nil
	}
	if slot.node == h.root || slot.node.Parent != nil {
		return slot.node
	}
	return nil
}

// redistribute moves every captured child into its target region: the one
// named by its slot marker when declared, the default region otherwise.
// Order within a region follows document order of the capture. Override
// regions clear their generated content before the first slotted child.
func (h *Host) redistribute() {
	fallback := h.regions[h.def.DefaultRegion]
	if fallback == nil {
		// A Build that never marked the default region distributes into
		// the generated root.
		fallback = &regionSlot{node: h.root}
		if h.def.DefaultRegion != "" {
			h.logger.Debug("default region missing from generated markup",
				slog.String("region", h.def.DefaultRegion))
		}
	}

	for _, child := range h.original {
		target := fallback
		if child.Kind == dom.KindElement {
			if marker, ok := child.Attr(SlotAttr); ok {
				if slot, declared := h.regions[marker]; declared {
					target = slot
				}
			}
		}
		if target.decl != nil && target.decl.Mode == ModeOverride && !target.overridden {
			target.node.ReplaceChildren()
			target.overridden = true
		}
		target.node.AppendChild(child)
		target.received++
	}
}

// prune removes RemoveWhenEmpty regions that received nothing and carry no
// generated content. The generated root itself is never pruned.
func (h *Host) prune() {
	for _, slot := range h.regions {
		if slot.node == h.root || slot.decl == nil {
			continue
		}
		if slot.decl.Empty == RemoveWhenEmpty && len(slot.node.Children) == 0 {
			slot.node.Detach()
		}
	}
}

// Attr reads an attribute from the host element, treating malformed values
// the same as absent ones.
func (h *Host) Attr(key string) (string, bool) {
	return h.node.Attr(key)
}

// AttrOr reads a host attribute with a fallback.
func (h *Host) AttrOr(key, fallback string) string {
	return h.node.AttrOr(key, fallback)
}

// Handle returns the widget handle, constructing it on first use. Nil when
// the toolkit or the constructor is absent.
func (h *Host) Handle() plugin.Handle {
	h.EnsureReady()
	var opts plugin.Options
	if h.def.PluginOptions != nil {
		opts = h.def.PluginOptions(h)
	}
	return h.bridge.GetOrCreate(opts)
}

// HandleLive reports whether hd is the host's current widget handle. Used
// by transition completion callbacks as a liveness guard.
func (h *Host) HandleLive(hd plugin.Handle) bool {
	return h.bridge.Live(hd)
}

// Show delegates to the widget. A missing widget makes this a no-op.
func (h *Host) Show() {
	if hd := h.Handle(); hd != nil {
		hd.Show()
	}
}

// Hide delegates to the widget. A missing widget makes this a no-op.
func (h *Host) Hide() {
	if hd := h.Handle(); hd != nil {
		hd.Hide()
	}
}

// Toggle delegates to the widget. A missing widget makes this a no-op.
func (h *Host) Toggle() {
	if hd := h.Handle(); hd != nil {
		hd.Toggle()
	}
}
