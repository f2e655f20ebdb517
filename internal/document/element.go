package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements are the elements that start a new block for automatic colors.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Body: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figure: true, atom.Footer: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Td: true, atom.Th: true, atom.Tr: true,
	atom.Ul: true,
}

// Element is an element node of a Document.
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// Attr returns an attribute value, or "".
func (e *Element) Attr(key string) string {
	return attr(e.node, key)
}

// Text returns the element's text content.
func (e *Element) Text() string {
	var b strings.Builder
	walk(e.node, func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

// Parent returns the enclosing element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return wrap(p)
		}
	}
	return nil
}

// IsBlock reports whether the element is a block-level element.
func (e *Element) IsBlock() bool {
	return blockElements[e.node.DataAtom]
}

// Block returns the closest block element containing e, e included.
func (e *Element) Block() *Element {
	for c := e; c != nil; c = c.Parent() {
		if c.IsBlock() {
			return c
		}
	}
	return e
}

// Style returns the inline value of property.
func (e *Element) Style(property string) string {
	return styleValue(e.node, property)
}

// ComputedStyle resolves property the way a browser would without stylesheets:
// the inline value if set, the parent's for inherited properties or an
// explicit `inherit`, otherwise the property's initial value.
func (e *Element) ComputedStyle(property string) string {
	for c := e; c != nil; c = c.Parent() {
		v := c.Style(property)
		if v != "" && !strings.EqualFold(v, "inherit") {
			return v
		}
		if v == "" && !inherited[property] {
			break
		}
	}
	return initialValue(property)
}
