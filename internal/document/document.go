// Package document holds the editable HTML content the color buttons operate on.
package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/hexcolor"
	"github.com/amterp/colorbox/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls the transformations applied when content is loaded.
type Options struct {
	// NormalizeBackground rewrites a color-only `background` shorthand on spans
	// to `background-color`.
	NormalizeBackground bool
}

// Document is a parsed HTML document with a selection.
// It is not safe for concurrent use.
type Document struct {
	root      *html.Node
	selection []*html.Node
	readOnly  bool
}

// Parse reads an HTML document and applies the content transformations.
func Parse(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	d := &Document{root: root}
	d.transform(opts)
	return d, nil
}

// ParseString is Parse for in-memory content.
func ParseString(s string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" if rendering fails.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// ReadOnly reports whether style commands are disabled.
func (d *Document) ReadOnly() bool {
	return d.readOnly
}

// SetReadOnly enables or disables style commands.
func (d *Document) SetReadOnly(readOnly bool) {
	d.readOnly = readOnly
}

// Body returns the <body> element.
func (d *Document) Body() *Element {
	n := findNode(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	return wrap(n)
}

// ElementByID returns the element with the given id attribute.
func (d *Document) ElementByID(id string) (*Element, error) {
	n := d.nodeByID(id)
	if n == nil {
		return nil, cberr.ElementNotFound(id)
	}
	return wrap(n), nil
}

func (d *Document) nodeByID(id string) *html.Node {
	return findNode(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
}

// IDs returns the id of every element carrying one, in document order.
func (d *Document) IDs() []string {
	var ids []string
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode {
			if id := attr(n, "id"); id != "" {
				ids = append(ids, id)
			}
		}
	})
	return ids
}

// Select replaces the selection with the elements carrying the given ids.
// The selection is left unchanged if any id is unknown.
func (d *Document) Select(ids ...string) error {
	nodes := make([]*html.Node, 0, len(ids))
	for _, id := range ids {
		n := d.nodeByID(id)
		if n == nil {
			return cberr.ElementNotFound(id)
		}
		nodes = append(nodes, n)
	}
	d.selection = nodes
	return nil
}

// ClearSelection empties the selection.
func (d *Document) ClearSelection() {
	d.selection = nil
}

// Selection returns the selected elements in selection order.
func (d *Document) Selection() []*Element {
	out := make([]*Element, len(d.selection))
	for i, n := range d.selection {
		out[i] = wrap(n)
	}
	return out
}

// StartElement returns the first selected element, or nil.
func (d *Document) StartElement() *Element {
	if len(d.selection) == 0 {
		return nil
	}
	return wrap(d.selection[0])
}

// QueryStyledNodes returns the spans carrying an inline value for property,
// in document order.
func (d *Document) QueryStyledNodes(property string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode || n.DataAtom != atom.Span {
			return
		}
		// Like a [style*=prop] selector this also matches longer property names,
		// so the exact property is checked afterwards.
		if !strings.Contains(strings.ToLower(attr(n, "style")), property) {
			return
		}
		if styleValue(n, property) == "" {
			return
		}
		out = append(out, wrap(n))
	})
	return out
}

// StyledNodes is QueryStyledNodes as the interface the extractor consumes.
func (d *Document) StyledNodes(property string) []model.StyledNode {
	elements := d.QueryStyledNodes(property)
	out := make([]model.StyledNode, len(elements))
	for i, e := range elements {
		out[i] = e
	}
	return out
}

// AutomaticColor returns the color the selection would have without an explicit style.
//
// It is read from the block enclosing the selection start (the body when nothing is
// selected). For background-color, transparent blocks are skipped in favour of their
// ancestors. White is returned when nothing resolves.
func (d *Document) AutomaticColor(property string) model.ColorCode {
	block := d.Body()
	if start := d.StartElement(); start != nil {
		block = start.Block()
	}

	value := ""
	for e := block; e != nil; e = e.Parent() {
		value = e.ComputedStyle(property)
		if property != model.PropertyBackgroundColor || !hexcolor.Normalize(value).IsEmpty() {
			break
		}
	}
	return hexcolor.NormalizeOr(value, model.White)
}

// SelectionColor returns the color shared by all selected text, or the empty code
// when the selection is empty, mixed or transparent.
func (d *Document) SelectionColor(property string) model.ColorCode {
	var (
		found bool
		color model.ColorCode
	)
	for _, sel := range d.selection {
		for _, n := range textCarriers(sel) {
			c := hexcolor.Normalize(wrap(n).ComputedStyle(property))
			if !found {
				found, color = true, c
				continue
			}
			if c != color {
				return model.NoColor
			}
		}
	}
	return color
}

// textCarriers returns the elements that directly hold the text under n,
// or n itself when it has no text.
func textCarriers(n *html.Node) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" && c.Parent != nil {
			out = append(out, c.Parent)
		}
	})
	if len(out) == 0 {
		out = append(out, n)
	}
	return out
}

// ApplyStyle sets desc on every selected element. Elements that are not of
// desc.Element's type get their content wrapped in one. Does nothing when read-only.
func (d *Document) ApplyStyle(desc model.StyleDescriptor) {
	if d.readOnly {
		return
	}
	for _, n := range d.selection {
		setStyleValue(styleTarget(n, desc.Element), desc.Property, desc.Value)
	}
}

// RemoveStyle clears desc.Property from the selection and everything inside it.
// Style elements left without attributes are unwrapped. Does nothing when read-only.
func (d *Document) RemoveStyle(desc model.StyleDescriptor) {
	if d.readOnly {
		return
	}
	for _, sel := range d.selection {
		var emptied []*html.Node
		walk(sel, func(n *html.Node) {
			if n.Type != html.ElementNode || !removeStyleValue(n, desc.Property) {
				return
			}
			if n != sel && n.Data == desc.Element && len(n.Attr) == 0 {
				emptied = append(emptied, n)
			}
		})
		for _, n := range emptied {
			unwrap(n)
		}
	}
}

// styleTarget returns the element that carries the style for n.
func styleTarget(n *html.Node, element string) *html.Node {
	if n.Data == element {
		return n
	}
	if c := n.FirstChild; c != nil && c == n.LastChild && c.Type == html.ElementNode && c.Data == element {
		return c
	}

	w := &html.Node{Type: html.ElementNode, Data: element, DataAtom: atom.Lookup([]byte(element))}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		w.AppendChild(c)
	}
	n.AppendChild(w)
	return w
}

func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// transform rewrites legacy markup into the span styles the buttons produce.
func (d *Document) transform(opts Options) {
	walk(d.root, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		if n.DataAtom == atom.Font && hasAttr(n, "color") {
			color := attr(n, "color")
			removeAttr(n, "color")
			n.Data, n.DataAtom = "span", atom.Span
			setStyleValue(n, model.PropertyColor, color)
		}
		if opts.NormalizeBackground && n.DataAtom == atom.Span {
			if bg := styleValue(n, "background"); bg != "" && hexcolor.IsValid(bg) {
				removeStyleValue(n, "background")
				setStyleValue(n, model.PropertyBackgroundColor, bg)
			}
		}
	})
}

// walk visits n and its descendants in document order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}
