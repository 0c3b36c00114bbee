package dom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new element with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, string.
func createElement(tag string, args []any) *Node {
	node := NewElement(tag)

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			node.SetAttr(v.Key, v.Value)

		case []Attr:
			for _, a := range v {
				node.SetAttr(a.Key, a.Value)
			}

		case *Node:
			if v != nil {
				node.AppendChild(v)
			}

		case []*Node:
			for _, c := range v {
				if c != nil {
					node.AppendChild(c)
				}
			}

		case string:
			node.AppendChild(Text(v))
		}
	}

	return node
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *Node { return createElement(tag, args) }

// Document structure

func Html(args ...any) *Node { return createElement("html", args) }
func Head(args ...any) *Node { return createElement("head", args) }
func Body(args ...any) *Node { return createElement("body", args) }

// Content sectioning

func Header(args ...any) *Node  { return createElement("header", args) }
func Footer(args ...any) *Node  { return createElement("footer", args) }
func Main(args ...any) *Node    { return createElement("main", args) }
func Nav(args ...any) *Node     { return createElement("nav", args) }
func Section(args ...any) *Node { return createElement("section", args) }
func Aside(args ...any) *Node   { return createElement("aside", args) }

// Text content

func Div(args ...any) *Node  { return createElement("div", args) }
func P(args ...any) *Node    { return createElement("p", args) }
func Span(args ...any) *Node { return createElement("span", args) }
func Pre(args ...any) *Node  { return createElement("pre", args) }
func Ul(args ...any) *Node   { return createElement("ul", args) }
func Ol(args ...any) *Node   { return createElement("ol", args) }
func Li(args ...any) *Node   { return createElement("li", args) }

// Headings

func H1(args ...any) *Node { return createElement("h1", args) }
func H2(args ...any) *Node { return createElement("h2", args) }
func H3(args ...any) *Node { return createElement("h3", args) }
func H4(args ...any) *Node { return createElement("h4", args) }
func H5(args ...any) *Node { return createElement("h5", args) }
func H6(args ...any) *Node { return createElement("h6", args) }

// Inline

func A(args ...any) *Node      { return createElement("a", args) }
func Strong(args ...any) *Node { return createElement("strong", args) }
func Em(args ...any) *Node     { return createElement("em", args) }
func Small(args ...any) *Node  { return createElement("small", args) }

// Forms

func Button(args ...any) *Node { return createElement("button", args) }
func Input(args ...any) *Node  { return createElement("input", args) }
func Label(args ...any) *Node  { return createElement("label", args) }
func Form(args ...any) *Node   { return createElement("form", args) }

// Embedded / metadata

func Img(args ...any) *Node    { return createElement("img", args) }
func Link(args ...any) *Node   { return createElement("link", args) }
func Meta(args ...any) *Node   { return createElement("meta", args) }
func Script(args ...any) *Node { return createElement("script", args) }
func Style(args ...any) *Node  { return createElement("style", args) }
func Title(args ...any) *Node  { return createElement("title", args) }

// Table

func Table(args ...any) *Node { return createElement("table", args) }
func Thead(args ...any) *Node { return createElement("thead", args) }
func Tbody(args ...any) *Node { return createElement("tbody", args) }
func Tr(args ...any) *Node    { return createElement("tr", args) }
func Th(args ...any) *Node    { return createElement("th", args) }
func Td(args ...any) *Node    { return createElement("td", args) }
