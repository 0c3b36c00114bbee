package element

import (
	"log/slog"
	"sync"

	"github.com/facet-ui/facet/pkg/assets"
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/plugin"
	"github.com/facet-ui/facet/pkg/schedule"
)

// Env bundles the ambient capabilities host elements depend on: the
// document, the cooperative task loop, the toolkit's widget registry, and
// the shared asset injector. Passing these explicitly (instead of reading
// globals) keeps the "toolkit absent" path an ordinary, testable state.
type Env struct {
	Doc     *dom.Document
	Loop    *schedule.Loop
	Plugins *plugin.Registry
	Assets  *assets.Injector
	Logger  *slog.Logger

	mu    sync.Mutex
	hosts map[*dom.Node]*Host
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithLogger sets the environment logger.
func WithLogger(logger *slog.Logger) EnvOption {
	return func(e *Env) { e.Logger = logger }
}

// WithPlugins sets the widget registry. Omitting it leaves an empty
// registry, i.e. the toolkit-absent capability downgrade.
func WithPlugins(reg *plugin.Registry) EnvOption {
	return func(e *Env) { e.Plugins = reg }
}

// WithResolver sets the asset resolver used by the shared injector.
func WithResolver(r assets.Resolver) EnvOption {
	return func(e *Env) { e.Assets = assets.NewInjector(e.Doc, r) }
}

// NewEnv creates an environment around the given document.
func NewEnv(doc *dom.Document, opts ...EnvOption) *Env {
	e := &Env{
		Doc:    doc,
		Loop:   schedule.NewLoop(),
		Logger: slog.Default(),
		hosts:  make(map[*dom.Node]*Host),
	}
	e.Plugins = plugin.NewRegistry(e.Logger)
	e.Assets = assets.NewInjector(doc, nil)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// track records the host for subtree-scoped batch operations.
func (e *Env) track(h *Host) {
	e.mu.Lock()
	e.hosts[h.node] = h
	e.mu.Unlock()
}

// hostOf returns the host wrapping the node, or nil.
func (e *Env) hostOf(n *dom.Node) *Host {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hosts[n]
}
