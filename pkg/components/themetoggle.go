package components

import (
	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/theme"
)

// ThemeToggle is the one component that touches origin-wide state: it
// persists the user's scheme choice through the theme.Manager and stays in
// sync with every sibling toggle via the manager's broadcast. Close
// releases the broadcast subscription; the host itself follows the normal
// element lifecycle.
type ThemeToggle struct {
	*element.Host
	manager *theme.Manager
	cancel  func()
}

// themeToggleDef builds a per-instance definition closing over the manager
// so materialization can render the current scheme.
func themeToggleDef(manager *theme.Manager) *element.Definition {
	return &element.Definition{
		Name: "theme-toggle",
		Regions: []element.Region{
			{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
		},
		DefaultRegion: "body",
		Build: func(h *element.Host) *dom.Node {
			pressed := manager.Effective() == theme.SchemeDark
			return dom.Button(
				dom.Type("button"), dom.Class("theme-toggle"),
				dom.Attr{Key: "aria-pressed", Value: boolStr(pressed)},
				dom.AriaLabel("Toggle color scheme"),
				h.MarkRegion("body", dom.Span(dom.Class("theme-toggle-icon"))),
			)
		},
	}
}

// NewThemeToggle creates a toggle bound to the manager. The returned
// component updates its pressed state whenever any instance (or the system
// preference) changes the scheme.
func NewThemeToggle(env *element.Env, manager *theme.Manager, args ...any) *ThemeToggle {
	t := &ThemeToggle{
		Host:    element.New(themeToggleDef(manager), env, args...),
		manager: manager,
	}
	t.cancel = manager.Subscribe(func(s theme.Scheme) {
		if root := t.Root(); root != nil {
			root.SetAttr("aria-pressed", boolStr(s == theme.SchemeDark))
		}
	})
	return t
}

// Toggle flips the scheme through the shared manager.
func (t *ThemeToggle) Toggle() {
	t.EnsureReady()
	t.manager.Toggle()
}

// Scheme returns the currently selected preference.
func (t *ThemeToggle) Scheme() theme.Scheme {
	return t.manager.Scheme()
}

// Close unsubscribes from scheme broadcasts and releases the host.
func (t *ThemeToggle) Close() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.Dispose()
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
