package components

import (
	"strconv"

	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/element"
	"github.com/facet-ui/facet/pkg/plugin"
)

// toastDefaultDelay is the auto-hide delay in milliseconds when the delay
// attribute is absent or malformed.
const toastDefaultDelay = 5000

// ToastDef describes the stacking notification. The header is generated
// from the title attribute; the delay attribute tunes auto-hide, falling
// back silently when it is not a number.
var ToastDef = &element.Definition{
	Name:   "toast",
	Widget: "toast",
	Regions: []element.Region{
		{Name: "header", Empty: element.RemoveWhenEmpty, Mode: element.ModeOverride},
		{Name: "body", Empty: element.KeepWhenEmpty, Mode: element.ModeAppend},
	},
	DefaultRegion: "body",
	Build: func(h *element.Host) *dom.Node {
		title, hasTitle := h.Attr("title")
		header := h.MarkRegion("header", dom.Div(dom.Class("toast-header"),
			dom.When(hasTitle, func() *dom.Node {
				return dom.Strong(dom.Class("toast-title"), title)
			}),
		))
		return dom.Div(dom.Class("toast"), dom.Role("status"), dom.AriaLive("polite"), dom.AriaAtomic(true),
			header,
			h.MarkRegion("body", dom.Div(dom.Class("toast-body"))),
		)
	},
	PluginOptions: func(h *element.Host) plugin.Options {
		delay := toastDefaultDelay
		if v, ok := h.Attr("delay"); ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				delay = parsed
			}
		}
		return plugin.Options{
			"delay":    delay,
			"autohide": !h.Node().HasAttr("no-autohide"),
		}
	},
	Setup: func(h *element.Host) {
		h.Env().Assets.EnsureStylesheet(ToolkitCSS)
	},
}

// Toast is a transient notification.
type Toast struct {
	*element.Host
}

func NewToast(env *element.Env, args ...any) *Toast {
	return &Toast{element.New(ToastDef, env, args...)}
}

func AdoptToast(env *element.Env, node *dom.Node) *Toast {
	return &Toast{element.Adopt(ToastDef, env, node)}
}
