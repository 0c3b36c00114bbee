// Package plugin bridges host elements to the wrapped presentation
// toolkit's widgets.
//
// The toolkit is modeled as a Registry of named widget constructors. The
// registry is an explicit capability passed into host elements rather than
// an ambient global, so the "toolkit absent" path is an ordinary, testable
// state: a missing constructor downgrades the component to static markup
// and every imperative operation becomes a no-op.
package plugin

import (
	"log/slog"
	"sync"

	"github.com/facet-ui/facet/pkg/dom"
)

// Handle is a live widget instance bound to one generated markup node.
type Handle interface {
	Show()
	Hide()
	Toggle()
	Dispose()
}

// NopHandle is a Handle whose operations all do nothing. It suits widgets
// that only ever render static markup.
type NopHandle struct{}

func (NopHandle) Show()    {}
func (NopHandle) Hide()    {}
func (NopHandle) Toggle()  {}
func (NopHandle) Dispose() {}

// Options is the configuration passed to a widget constructor.
type Options map[string]any

// Constructor builds a widget handle bound to the given node.
type Constructor func(node *dom.Node, opts Options) Handle

// Registry holds the toolkit's widget constructors and tracks live handles
// per bound node, mirroring the toolkit's "get existing instance for this
// node" lookup.
type Registry struct {
	mu     sync.RWMutex
	ctors  map[string]Constructor
	live   map[*dom.Node]map[string]Handle
	logger *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger falls back to
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		ctors:  make(map[string]Constructor),
		live:   make(map[*dom.Node]map[string]Handle),
		logger: logger,
	}
}

// Register installs a widget constructor under the given name.
func (r *Registry) Register(name string, ctor Constructor) {
	if name == "" || ctor == nil {
		return
	}
	r.mu.Lock()
	r.ctors[name] = ctor
	r.mu.Unlock()
}

// Has reports whether a constructor is registered for the widget name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ctors[name]
	return ok
}

// Existing returns the live handle for (name, node), or nil.
func (r *Registry) Existing(name string, node *dom.Node) Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live[node][name]
}

// GetOrCreate returns the existing handle for (name, node) or constructs a
// new one. Two live handles on the same node would both claim ownership of
// the widget's listeners, so construction only happens when no handle
// exists. Returns nil when no constructor is registered; that is the silent
// capability downgrade, not an error.
func (r *Registry) GetOrCreate(name string, node *dom.Node, opts Options) Handle {
	if node == nil {
		return nil
	}
	r.mu.Lock()
	if h := r.live[node][name]; h != nil {
		r.mu.Unlock()
		return h
	}
	ctor, ok := r.ctors[name]
	r.mu.Unlock()
	if !ok {
		r.logger.Debug("widget constructor not registered, skipping",
			slog.String("widget", name))
		return nil
	}

	h := ctor(node, opts)
	if h == nil {
		return nil
	}
	r.mu.Lock()
	if r.live[node] == nil {
		r.live[node] = make(map[string]Handle)
	}
	r.live[node][name] = h
	r.mu.Unlock()
	return h
}

// release forgets the live handle for (name, node).
func (r *Registry) release(name string, node *dom.Node) {
	r.mu.Lock()
	if m := r.live[node]; m != nil {
		delete(m, name)
		if len(m) == 0 {
			delete(r.live, node)
		}
	}
	r.mu.Unlock()
}
