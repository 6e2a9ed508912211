package page

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elem creates an element node.
func Elem(tag atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
		Attr:     attrs,
	}
}

// A builds an attribute.
func A(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Class builds a class attribute.
func Class(names ...string) html.Attribute {
	return A("class", strings.Join(names, " "))
}

// Text creates a text node. Content is escaped when rendered.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append adds children to parent and returns parent.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c != nil {
			parent.AppendChild(c)
		}
	}
	return parent
}

// ReplaceChildren removes every child of n, then appends children.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	Append(n, children...)
}

// SetText replaces the content of n with a single text node.
func SetText(n *html.Node, s string) {
	ReplaceChildren(n, Text(s))
}

// TextContent concatenates all descendant text.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// GetAttr returns the value of key on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or adds key on n.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes key from n.
func RemoveAttr(n *html.Node, key string) {
	n.Attr = slices.DeleteFunc(n.Attr, func(a html.Attribute) bool { return a.Key == key })
}

// HasClass reports whether n's class list contains name.
func HasClass(n *html.Node, name string) bool {
	v, _ := GetAttr(n, "class")
	return slices.Contains(strings.Fields(v), name)
}

// AddClass adds name to n's class list once.
func AddClass(n *html.Node, name string) {
	if HasClass(n, name) {
		return
	}
	v, _ := GetAttr(n, "class")
	SetAttr(n, "class", strings.TrimSpace(v+" "+name))
}

// RemoveClass removes name from n's class list.
func RemoveClass(n *html.Node, name string) {
	v, ok := GetAttr(n, "class")
	if !ok {
		return
	}
	fields := slices.DeleteFunc(strings.Fields(v), func(f string) bool { return f == name })
	SetAttr(n, "class", strings.Join(fields, " "))
}

// clone deep-copies n without parent or sibling links.
func clone(n *html.Node) *html.Node {
	cp := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cp.AppendChild(clone(c))
	}
	return cp
}
