package element

import (
	"testing"

	"github.com/facet-ui/facet/pkg/dom"
	"github.com/facet-ui/facet/pkg/plugin"
)

// panelWidget is a stand-in toolkit widget recording calls.
type panelWidget struct {
	shown    bool
	disposed int
}

func (w *panelWidget) Show()    { w.shown = true }
func (w *panelWidget) Hide()    { w.shown = false }
func (w *panelWidget) Toggle()  { w.shown = !w.shown }
func (w *panelWidget) Dispose() { w.disposed++ }

// testEnv builds an environment with a "panel" widget registered and
// returns the widgets it constructed.
func testEnv(t *testing.T) (*Env, *[]*panelWidget) {
	t.Helper()
	var created []*panelWidget
	env := NewEnv(dom.NewDocument())
	env.Plugins.Register("panel", func(node *dom.Node, opts plugin.Options) plugin.Handle {
		w := &panelWidget{}
		created = append(created, w)
		return w
	})
	return env, &created
}

// panelDef is a dialog-shaped test component: an override header generated
// from the title attribute, a default body, and a footer that is pruned
// when empty.
func panelDef() *Definition {
	return &Definition{
		Name:   "panel",
		Widget: "panel",
		Regions: []Region{
			{Name: "header", Empty: RemoveWhenEmpty, Mode: ModeOverride},
			{Name: "body", Empty: KeepWhenEmpty, Mode: ModeAppend},
			{Name: "footer", Empty: RemoveWhenEmpty, Mode: ModeAppend},
		},
		DefaultRegion: "body",
		Build: func(h *Host) *dom.Node {
			header := h.MarkRegion("header", dom.Header(dom.Class("panel-header")))
			if title, ok := h.Attr("title"); ok {
				header.AppendChild(dom.H5(dom.Class("panel-title"), title))
			}
			return dom.Div(dom.Class("panel"),
				header,
				h.MarkRegion("body", dom.Div(dom.Class("panel-body"))),
				h.MarkRegion("footer", dom.Footer(dom.Class("panel-footer"))),
			)
		},
	}
}

// attach appends the host element to the document body and fires the
// attach hook, like a parser pass would.
func attach(env *Env, h *Host) {
	env.Doc.Body().AppendChild(h.Node())
	h.Connected()
}

func countNodes(regions ...*dom.Node) int {
	total := 0
	for _, r := range regions {
		if r != nil {
			total += len(r.Children)
		}
	}
	return total
}

func TestIdempotentMaterialization(t *testing.T) {
	env, _ := testEnv(t)
	h := New(panelDef(), env)
	env.Doc.Body().AppendChild(h.Node())

	for i := 0; i < 5; i++ {
		h.Connected()
	}
	env.Loop.FlushAll()

	if !h.Ready() {
		t.Fatal("host did not materialize")
	}
	if got := len(h.Node().Children); got != 1 {
		t.Fatalf("host children = %d, want exactly one generated root", got)
	}
	bodies, err := dom.QueryAll(h.Node(), ".panel-body")
	if err != nil {
		t.Fatal(err)
	}
	if len(bodies) != 1 {
		t.Errorf("generated %d body regions, want 1", len(bodies))
	}
}

func TestDeferredMaterializationReadsLateChildren(t *testing.T) {
	env, _ := testEnv(t)
	h := New(panelDef(), env)
	attach(env, h)

	// Children arrive after the attach hook, within the same pass, as when
	// the parser attaches the element before parsing its content.
	h.Node().AppendChild(dom.P("late"))
	env.Loop.FlushAll()

	body := h.Region("body")
	if body == nil || body.TextContent() != "late" {
		t.Error("late-parsed child missing from default region")
	}
}

func TestRedistribution(t *testing.T) {
	t.Run("completeness and order", func(t *testing.T) {
		env, _ := testEnv(t)
		h := New(panelDef(), env,
			dom.Span(dom.Slot("footer"), "f1"),
			dom.Text("loose text"),
			dom.P("p1"),
			dom.Span(dom.Slot("footer"), "f2"),
			dom.P(dom.Slot("nowhere"), "lost?"),
		)
		attach(env, h)
		env.Loop.FlushAll()

		body, footer := h.Region("body"), h.Region("footer")
		if got := countNodes(body, footer, h.Region("header")); got != 5 {
			t.Fatalf("redistributed %d nodes, want 5", got)
		}
		if got := len(footer.Children); got != 2 {
			t.Fatalf("footer children = %d, want 2", got)
		}
		if footer.Children[0].TextContent() != "f1" || footer.Children[1].TextContent() != "f2" {
			t.Error("footer order does not match document order")
		}
		wantBody := []string{"loose text", "p1", "lost?"}
		if got := len(body.Children); got != len(wantBody) {
			t.Fatalf("body children = %d, want %d", got, len(wantBody))
		}
		for i, w := range wantBody {
			if got := body.Children[i].TextContent(); got != w {
				t.Errorf("body[%d] = %q, want %q", i, got, w)
			}
		}
	})

	t.Run("override replaces generated content", func(t *testing.T) {
		env, _ := testEnv(t)
		h := New(panelDef(), env,
			dom.TitleAttr("Generated Title"),
			dom.H3(dom.Slot("header"), "Custom"),
		)
		attach(env, h)
		env.Loop.FlushAll()

		header := h.Region("header")
		if header == nil {
			t.Fatal("header region missing")
		}
		if got := len(header.Children); got != 1 {
			t.Fatalf("header children = %d, want 1 (override, not append)", got)
		}
		if got := header.TextContent(); got != "Custom" {
			t.Errorf("header = %q, want Custom", got)
		}
	})

	t.Run("empty removable region pruned", func(t *testing.T) {
		env, _ := testEnv(t)
		h := New(panelDef(), env, dom.P("content"))
		attach(env, h)
		env.Loop.FlushAll()

		if h.Region("footer") != nil {
			t.Error("empty footer should be pruned")
		}
		if h.Region("header") != nil {
			t.Error("header with no title and no override should be pruned")
		}
		if h.Region("body") == nil {
			t.Error("body is structurally required and must stay")
		}
	})

	t.Run("end to end scenario", func(t *testing.T) {
		env, _ := testEnv(t)
		h := New(panelDef(), env,
			dom.Span(dom.Slot("footer"), "close"),
			dom.Span(dom.Slot("bogus"), "stray"),
			dom.Text("plain"),
		)
		attach(env, h)
		env.Loop.FlushAll()

		footer := h.Region("footer")
		if footer == nil {
			t.Fatal("footer received a node and must be present")
		}
		if len(footer.Children) != 1 || footer.TextContent() != "close" {
			t.Error("footer should contain exactly the marked child")
		}
		body := h.Region("body")
		if len(body.Children) != 2 {
			t.Fatalf("body children = %d, want 2", len(body.Children))
		}
		if body.Children[0].TextContent() != "stray" || body.Children[1].TextContent() != "plain" {
			t.Error("default region order broken")
		}
	})
}

func TestHostAttributeCopy(t *testing.T) {
	env, _ := testEnv(t)
	h := New(panelDef(), env, dom.Class("shadow"), dom.ID("p1"))
	attach(env, h)
	env.Loop.FlushAll()

	root := h.Root()
	if !root.HasClass("panel") || !root.HasClass("shadow") {
		t.Errorf("root class = %q, want generated and host tokens", root.AttrOr("class", ""))
	}
	if got := root.AttrOr("id", ""); got != "p1" {
		t.Errorf("root id = %q, want p1", got)
	}
}

func TestImperativeBeforeDeferredRender(t *testing.T) {
	env, created := testEnv(t)
	h := New(panelDef(), env)
	attach(env, h)

	// Show before the deferred materialization has run: must materialize
	// synchronously, then delegate.
	h.Show()

	if !h.Ready() {
		t.Fatal("Show did not force materialization")
	}
	if len(*created) != 1 || !(*created)[0].shown {
		t.Fatal("widget not created or not shown")
	}

	// The deferred callback still fires but must be a no-op.
	env.Loop.FlushAll()
	if got := len(h.Node().Children); got != 1 {
		t.Errorf("host children = %d after late deferred callback, want 1", got)
	}
}

func TestReattachmentSafety(t *testing.T) {
	env, created := testEnv(t)
	h := New(panelDef(), env, dom.P("body"))
	attach(env, h)
	env.Loop.FlushAll()
	h.Show()

	before := dom.Dump(h.Node())

	h.Node().Detach()
	h.Disconnected()
	if (*created)[0].disposed != 1 {
		t.Error("detach should dispose the widget handle")
	}

	attach(env, h)
	env.Loop.FlushAll()

	if after := dom.Dump(h.Node()); after != before {
		t.Errorf("markup changed across re-attach:\nbefore:\n%s\nafter:\n%s", before, after)
	}

	// Handle is recreated on demand, not left nil forever.
	h.Show()
	if len(*created) != 2 {
		t.Fatalf("widgets created = %d, want 2", len(*created))
	}
}

func TestDisposeIdempotence(t *testing.T) {
	env, created := testEnv(t)
	h := New(panelDef(), env)
	attach(env, h)
	env.Loop.FlushAll()
	h.Show()

	h.Dispose()
	h.Dispose()

	if (*created)[0].disposed != 1 {
		t.Errorf("widget disposed %d times, want 1", (*created)[0].disposed)
	}
}

func TestForceRender(t *testing.T) {
	env, created := testEnv(t)
	h := New(panelDef(), env, dom.TitleAttr("Old"), dom.P("kept"))
	attach(env, h)
	env.Loop.FlushAll()
	h.Show()

	h.Node().SetAttr("title", "New")
	h.ForceRender()

	if !h.Ready() {
		t.Fatal("ForceRender must re-materialize synchronously")
	}
	if (*created)[0].disposed != 1 {
		t.Error("ForceRender must dispose the old handle")
	}
	header := h.Region("header")
	if header == nil || header.TextContent() != "New" {
		t.Error("re-render did not reflect the changed attribute")
	}
	body := h.Region("body")
	if body == nil || body.TextContent() != "kept" {
		t.Error("original children must survive re-render")
	}
	if got := len(h.Node().Children); got != 1 {
		t.Errorf("host children = %d after re-render, want 1", got)
	}
}

func TestMissingWidgetDowngrades(t *testing.T) {
	env := NewEnv(dom.NewDocument()) // no constructors registered
	h := New(panelDef(), env, dom.P("static"))
	attach(env, h)
	env.Loop.FlushAll()

	// Imperative ops are silent no-ops; markup still materialized.
	h.Show()
	h.Toggle()
	h.Hide()

	if h.Region("body") == nil || h.Region("body").TextContent() != "static" {
		t.Error("markup must render without the toolkit")
	}
	if h.Handle() != nil {
		t.Error("handle must stay nil without a constructor")
	}
}

func TestBatchOps(t *testing.T) {
	def := panelDef()

	t.Run("init all within subtree", func(t *testing.T) {
		env, _ := testEnv(t)
		subtree := dom.Div(
			dom.El(def.TagName(), dom.P("a")),
			dom.Div(dom.El(def.TagName(), dom.P("b"))),
		)
		outside := dom.El(def.TagName())
		env.Doc.Body().AppendChild(subtree)
		env.Doc.Body().AppendChild(outside)

		hosts := InitAll(env, subtree, def)
		env.Loop.FlushAll()

		if len(hosts) != 2 {
			t.Fatalf("hosts = %d, want 2", len(hosts))
		}
		for i, h := range hosts {
			if !h.Ready() {
				t.Errorf("host %d not materialized", i)
			}
		}
		if env.hostOf(outside) != nil {
			t.Error("element outside the subtree must not be adopted")
		}
	})

	t.Run("init adopts nested hosts", func(t *testing.T) {
		env, _ := testEnv(t)
		inner := dom.El(def.TagName(), dom.P("inner body"))
		outer := dom.El(def.TagName(), dom.P("outer body"), inner)
		subtree := dom.Div(outer)
		env.Doc.Body().AppendChild(subtree)

		hosts := InitAll(env, subtree, def)
		env.Loop.FlushAll()

		if len(hosts) != 2 {
			t.Fatalf("hosts = %d, want 2 (outer and nested)", len(hosts))
		}
		nested := env.hostOf(inner)
		if nested == nil {
			t.Fatal("host element inside another host's light tree was not adopted")
		}
		if !nested.Ready() {
			t.Error("nested host not materialized")
		}
		if body := env.hostOf(outer).Region("body"); body != nil {
			found := false
			for _, child := range body.Children {
				if child == inner {
					found = true
				}
			}
			if !found {
				t.Error("nested host element not redistributed into the outer body region")
			}
		}
	})

	t.Run("repeat init reuses hosts", func(t *testing.T) {
		env, _ := testEnv(t)
		subtree := dom.Div(dom.El(def.TagName()))
		env.Doc.Body().AppendChild(subtree)

		first := InitAll(env, subtree, def)
		env.Loop.FlushAll()
		second := InitAll(env, subtree, def)
		env.Loop.FlushAll()

		if first[0] != second[0] {
			t.Error("second pass must reuse the adopted host")
		}
	})

	t.Run("dispose all", func(t *testing.T) {
		env, created := testEnv(t)
		subtree := dom.Div(dom.El(def.TagName()), dom.El(def.TagName()))
		env.Doc.Body().AppendChild(subtree)
		hosts := InitAll(env, subtree, def)
		env.Loop.FlushAll()
		for _, h := range hosts {
			h.Show()
		}

		n := DisposeAll(env, subtree)
		if n != 2 {
			t.Errorf("disposed = %d, want 2", n)
		}
		for i, w := range *created {
			if w.disposed != 1 {
				t.Errorf("widget %d disposed %d times, want 1", i, w.disposed)
			}
		}
	})
}
