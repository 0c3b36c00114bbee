package dom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return attr("style", style) }

// Slot marks which named region of a host element a child belongs to.
func Slot(name string) Attr { return attr("slot", name) }

// Data creates a data-* attribute.
// Example: Data("dismiss", "dialog") → data-dismiss="dialog"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr { return attr("aria-expanded", expanded) }

// AriaLabelledBy sets the aria-labelledby attribute.
func AriaLabelledBy(id string) Attr { return attr("aria-labelledby", id) }

// AriaLive sets the aria-live attribute.
func AriaLive(mode string) Attr { return attr("aria-live", mode) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", selected) }

// AriaModal sets the aria-modal attribute.
func AriaModal(modal bool) Attr { return attr("aria-modal", modal) }

// AriaAtomic sets the aria-atomic attribute.
func AriaAtomic(atomic bool) Attr { return attr("aria-atomic", atomic) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }

// Visibility attributes

// Hidden sets the hidden attribute.
func Hidden() Attr { return attr("hidden", true) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Class list helpers. The class attribute is a space-separated token list;
// these keep it deduplicated.

// AddClass adds one or more class tokens to the node.
func (n *Node) AddClass(classes ...string) {
	tokens := splitClasses(n.AttrOr("class", ""))
	for _, c := range classes {
		if c != "" && !containsToken(tokens, c) {
			tokens = append(tokens, c)
		}
	}
	n.SetAttr("class", strings.Join(tokens, " "))
}

// RemoveClass removes class tokens from the node.
func (n *Node) RemoveClass(classes ...string) {
	tokens := splitClasses(n.AttrOr("class", ""))
	kept := tokens[:0]
	for _, t := range tokens {
		if !containsToken(classes, t) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		n.RemoveAttr("class")
		return
	}
	n.SetAttr("class", strings.Join(kept, " "))
}

// HasClass reports whether the node carries the class token.
func (n *Node) HasClass(class string) bool {
	return containsToken(splitClasses(n.AttrOr("class", "")), class)
}

func splitClasses(s string) []string {
	return strings.Fields(s)
}

func containsToken(tokens []string, t string) bool {
	for _, tok := range tokens {
		if tok == t {
			return true
		}
	}
	return false
}

// CopyAttrs copies every attribute from src onto dst. Class tokens are
// merged rather than overwritten so generated structural classes survive.
func CopyAttrs(dst, src *Node) {
	if dst == nil || src == nil || src.Attrs == nil {
		return
	}
	for k, v := range src.Attrs {
		if k == "class" {
			dst.AddClass(splitClasses(v)...)
			continue
		}
		dst.SetAttr(k, v)
	}
}
