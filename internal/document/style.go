package document

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// inherited lists the properties that take their parent's value when unset.
var inherited = map[string]bool{
	"color":       true,
	"font-family": true,
	"font-size":   true,
	"font-style":  true,
	"font-weight": true,
}

// initialValues are what browsers resolve an unset property to.
var initialValues = map[string]string{
	"color":            "rgb(0, 0, 0)",
	"background-color": "transparent",
}

func initialValue(property string) string {
	if v, ok := initialValues[property]; ok {
		return v
	}
	return ""
}

// declarations parses an element's style attribute.
// Inline styles tolerate empty declarations and a missing trailing semicolon,
// the parser does not, so the attribute is cleaned up first. ok is false when
// some declaration still failed to parse; decls then holds the ones that did.
func declarations(n *html.Node) (decls []*css.Declaration, ok bool) {
	segments := styleSegments(attr(n, "style"))
	if len(segments) == 0 {
		return nil, true
	}
	decls, err := parser.ParseDeclarations(strings.Join(segments, "; ") + ";")
	if err == nil {
		return decls, true
	}
	decls = nil
	for _, seg := range segments {
		parsed, err := parser.ParseDeclarations(seg + ";")
		if err != nil {
			continue
		}
		decls = append(decls, parsed...)
	}
	return decls, false
}

// styleSegments splits a style attribute into its non-blank declarations.
func styleSegments(style string) []string {
	var segments []string
	for _, seg := range strings.Split(style, ";") {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}

// styleValue returns the inline value of property, last declaration winning.
func styleValue(n *html.Node, property string) string {
	decls, _ := declarations(n)
	value := ""
	for _, decl := range decls {
		if strings.EqualFold(strings.TrimSpace(decl.Property), property) {
			value = strings.TrimSpace(decl.Value)
		}
	}
	return value
}

// setStyleValue sets property, replacing any existing declarations of it.
func setStyleValue(n *html.Node, property, value string) {
	decls, ok := declarations(n)
	if !ok {
		rewriteSegments(n, property, value, true)
		return
	}
	decls = withoutProperty(decls, property)
	decls = append(decls, &css.Declaration{Property: property, Value: value})
	writeDeclarations(n, decls)
}

// removeStyleValue drops property and reports whether it was present.
func removeStyleValue(n *html.Node, property string) bool {
	decls, ok := declarations(n)
	if !ok {
		return rewriteSegments(n, property, "", false)
	}
	kept := withoutProperty(decls, property)
	if len(kept) == len(decls) {
		return false
	}
	writeDeclarations(n, kept)
	return true
}

// rewriteSegments edits a style attribute the parser rejected, keeping every
// other declaration as written. With set, property: value is appended.
// Reports whether the attribute changed.
func rewriteSegments(n *html.Node, property, value string, set bool) bool {
	var kept []string
	removed := false
	for _, seg := range styleSegments(attr(n, "style")) {
		name, _, _ := strings.Cut(seg, ":")
		if strings.EqualFold(strings.TrimSpace(name), property) {
			removed = true
			continue
		}
		kept = append(kept, seg)
	}
	if set {
		kept = append(kept, property+": "+value)
	} else if !removed {
		return false
	}
	if len(kept) == 0 {
		removeAttr(n, "style")
		return true
	}
	setAttr(n, "style", strings.Join(kept, "; "))
	return true
}

func withoutProperty(decls []*css.Declaration, property string) []*css.Declaration {
	kept := decls[:0:0]
	for _, decl := range decls {
		if !strings.EqualFold(strings.TrimSpace(decl.Property), property) {
			kept = append(kept, decl)
		}
	}
	return kept
}

func writeDeclarations(n *html.Node, decls []*css.Declaration) {
	if len(decls) == 0 {
		removeAttr(n, "style")
		return
	}
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		part := strings.TrimSpace(decl.Property) + ": " + strings.TrimSpace(decl.Value)
		if decl.Important {
			part += " !important"
		}
		parts = append(parts, part)
	}
	setAttr(n, "style", strings.Join(parts, "; "))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		kept = append(kept, a)
	}
	n.Attr = kept
}
