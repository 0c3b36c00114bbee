// Package render serializes dom trees to HTML.
//
// The preview server, the CLI and the snapshot publisher all render through
// this package. Output is deterministic: attributes are emitted in sorted
// order so rendered markup can be compared byte-for-byte in tests.
package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/facet-ui/facet/pkg/dom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a node tree to an HTML string.
func (r *Renderer) ToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.ToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ToWriter streams a node tree to the given writer.
func (r *Renderer) ToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// Document renders a full document with the doctype preamble.
func (r *Renderer) Document(w io.Writer, doc *dom.Document) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
		return err
	}
	if r.config.Pretty {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return r.renderNode(w, doc.Root(), 0)
}

func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case dom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if dom.IsVoidElement(node.Tag) {
		if r.config.Pretty {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	}

	onlyText := len(node.Children) == 1 && node.Children[0].Kind != dom.KindElement
	if r.config.Pretty && len(node.Children) > 0 && !onlyText {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	for _, c := range node.Children {
		d := depth + 1
		if onlyText {
			d = 0
		}
		if err := r.renderNode(w, c, d); err != nil {
			return err
		}
	}
	if r.config.Pretty && len(node.Children) > 0 && !onlyText {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "</"+node.Tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}

func (r *Renderer) renderAttributes(w io.Writer, node *dom.Node) error {
	if len(node.Attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(node.Attrs))
	for k := range node.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := node.Attrs[k]
		if v == "" {
			// Value-less boolean attribute.
			if _, err := io.WriteString(w, " "+k); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "+k+`="`+escapeAttr(v)+`"`); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	_, err := io.WriteString(w, strings.Repeat(r.config.Indent, depth))
	return err
}
