package plugin

import (
	"testing"

	"github.com/facet-ui/facet/pkg/dom"
)

// fakeWidget records imperative calls, standing in for a toolkit widget.
type fakeWidget struct {
	node     *dom.Node
	shown    bool
	disposed int
	onHide   func() // simulated transition completion callback
}

func (w *fakeWidget) Show()   { w.shown = true }
func (w *fakeWidget) Toggle() { w.shown = !w.shown }
func (w *fakeWidget) Hide() {
	w.shown = false
	if w.onHide != nil {
		w.onHide()
	}
}
func (w *fakeWidget) Dispose() { w.disposed++ }

func fakeConstructor(created *[]*fakeWidget) Constructor {
	return func(node *dom.Node, opts Options) Handle {
		w := &fakeWidget{node: node}
		*created = append(*created, w)
		return w
	}
}

func TestRegistry(t *testing.T) {
	t.Run("get or create returns existing", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("collapse", fakeConstructor(&created))
		node := dom.Div()

		a := reg.GetOrCreate("collapse", node, nil)
		b := reg.GetOrCreate("collapse", node, nil)

		if a == nil || a != b {
			t.Fatal("second call must return the existing handle")
		}
		if len(created) != 1 {
			t.Errorf("constructed %d widgets, want 1", len(created))
		}
	})

	t.Run("separate nodes get separate handles", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("collapse", fakeConstructor(&created))

		a := reg.GetOrCreate("collapse", dom.Div(), nil)
		b := reg.GetOrCreate("collapse", dom.Div(), nil)

		if a == b {
			t.Fatal("handles on different nodes must be distinct")
		}
	})

	t.Run("missing constructor returns nil", func(t *testing.T) {
		reg := NewRegistry(nil)
		if h := reg.GetOrCreate("unknown", dom.Div(), nil); h != nil {
			t.Errorf("handle = %v, want nil", h)
		}
	})

	t.Run("existing lookup", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("collapse", fakeConstructor(&created))
		node := dom.Div()

		if h := reg.Existing("collapse", node); h != nil {
			t.Error("no handle expected before creation")
		}
		h := reg.GetOrCreate("collapse", node, nil)
		if got := reg.Existing("collapse", node); got != h {
			t.Error("Existing should return the live handle")
		}
	})
}

func TestBridge(t *testing.T) {
	t.Run("dispose is idempotent", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("dialog", fakeConstructor(&created))

		b := NewBridge(reg, "dialog")
		b.Bind(dom.Div())
		b.GetOrCreate(nil)

		b.Dispose()
		b.Dispose()

		if b.Existing() != nil {
			t.Error("handle should be nil after dispose")
		}
		if created[0].disposed != 1 {
			t.Errorf("widget disposed %d times, want 1", created[0].disposed)
		}
	})

	t.Run("dispose with no handle is a no-op", func(t *testing.T) {
		b := NewBridge(NewRegistry(nil), "dialog")
		b.Dispose() // must not panic
	})

	t.Run("recreate after dispose", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("dialog", fakeConstructor(&created))

		b := NewBridge(reg, "dialog")
		b.Bind(dom.Div())
		first := b.GetOrCreate(nil)
		b.Dispose()
		second := b.GetOrCreate(nil)

		if second == nil || second == first {
			t.Fatal("want a fresh handle after dispose")
		}
		if len(created) != 2 {
			t.Errorf("constructed %d widgets, want 2", len(created))
		}
	})

	t.Run("rebind disposes old handle", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("dialog", fakeConstructor(&created))

		b := NewBridge(reg, "dialog")
		b.Bind(dom.Div())
		b.GetOrCreate(nil)
		b.Bind(dom.Div())

		if created[0].disposed != 1 {
			t.Error("old handle should be disposed on rebind")
		}
		if b.Existing() != nil {
			t.Error("no handle expected immediately after rebind")
		}
	})

	t.Run("transition callback fails liveness after dispose", func(t *testing.T) {
		var created []*fakeWidget
		reg := NewRegistry(nil)
		reg.Register("dialog", fakeConstructor(&created))

		b := NewBridge(reg, "dialog")
		b.Bind(dom.Div())
		h := b.GetOrCreate(nil)
		w := created[0]

		var liveDuringCallback bool
		w.onHide = func() { liveDuringCallback = b.Live(h) }

		// Dispose mid-transition: the stored reference is cleared before
		// the widget teardown, so the callback sees a stale handle.
		b.Dispose()
		w.Hide()

		if liveDuringCallback {
			t.Error("callback observed a disposed handle as live")
		}
	})

	t.Run("unbound bridge yields nil handle", func(t *testing.T) {
		b := NewBridge(NewRegistry(nil), "dialog")
		if h := b.GetOrCreate(nil); h != nil {
			t.Errorf("handle = %v, want nil", h)
		}
	})
}
