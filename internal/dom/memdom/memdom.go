// Package memdom is an in-memory implementation of the dom interfaces.
//
// It plays the part of the browser for tests and for the terminal host: besides
// building the tree it can dispatch events, simulate typing into fields, run CSS
// selector queries and serialise a subtree to HTML.
package memdom

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/idilsaglam/todoweb/internal/dom"
)

// NodeType tells elements and text nodes apart.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// Document owns an <html><body> skeleton.
type Document struct {
	root *Node
	body *Node
}

// NewDocument returns an empty document with a body ready for mounting.
func NewDocument() *Document {
	root := newElement("html")
	body := newElement("body")
	root.AppendChild(body)
	return &Document{root: root, body: body}
}

func (d *Document) CreateElement(tag string) dom.Element { return newElement(tag) }

func (d *Document) CreateTextNode(text string) dom.Node {
	return &Node{typ: TextNode, text: text}
}

func (d *Document) Body() dom.Element { return d.body }

// BodyNode is Body without the interface, for host-side inspection.
func (d *Document) BodyNode() *Node { return d.body }

type listener struct {
	typ string
	fn  dom.Listener
}

// Node is an element or a text node. It implements dom.Element; text nodes
// ignore element-only operations.
type Node struct {
	typ       NodeType
	tag       string
	text      string
	attrs     []html.Attribute
	parent    *Node
	children  []*Node
	listeners []listener
	value     string
}

func newElement(tag string) *Node {
	return &Node{typ: ElementNode, tag: strings.ToLower(tag)}
}

func (n *Node) Type() NodeType { return n.typ }

// Tag is the lower-cased tag name, empty for text nodes.
func (n *Node) Tag() string { return n.tag }

func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

func (n *Node) SetAttribute(name, value string) {
	if n.typ != ElementNode {
		return
	}
	if name == "value" {
		n.value = value
	}
	for i := range n.attrs {
		if n.attrs[i].Key == name {
			n.attrs[i].Val = value
			return
		}
	}
	n.attrs = append(n.attrs, html.Attribute{Key: name, Val: value})
}

// Attribute returns the attribute value and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) HasAttribute(name string) bool {
	_, ok := n.Attribute(name)
	return ok
}

// Attributes returns the attributes in the order they were first set.
func (n *Node) Attributes() []html.Attribute { return slices.Clone(n.attrs) }

// HasClass reports whether class is one of the space-separated classes.
func (n *Node) HasClass(class string) bool {
	v, _ := n.Attribute("class")
	return slices.Contains(strings.Fields(v), class)
}

func (n *Node) AppendChild(child dom.Node) {
	c, ok := child.(*Node)
	if !ok || c == nil || n.typ != ElementNode || c == n {
		return
	}
	c.detach()
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) ReplaceWith(next dom.Node) {
	nx, ok := next.(*Node)
	if !ok || nx == nil || nx == n || n.parent == nil {
		return
	}
	nx.detach()
	p := n.parent
	i := slices.Index(p.children, n)
	p.children[i] = nx
	nx.parent = p
	n.parent = nil
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

func (n *Node) AddEventListener(typ string, fn dom.Listener) {
	if fn == nil {
		return
	}
	n.listeners = append(n.listeners, listener{typ: typ, fn: fn})
}

func (n *Node) Value() string { return n.value }

// SetValue changes a field value the way typing would. It does not fire events.
func (n *Node) SetValue(v string) { n.value = v }

// Dispatch fires the listeners registered for typ, in registration order, and
// returns how many ran. Listeners added while dispatching are not called.
func (n *Node) Dispatch(typ string) int {
	ev := &Event{typ: typ, target: n}
	fired := 0
	for _, l := range slices.Clone(n.listeners) {
		if l.typ != typ {
			continue
		}
		l.fn(ev)
		fired++
	}
	return fired
}

// TextContent concatenates the text of the node and all its descendants.
func (n *Node) TextContent() string {
	if n.typ == TextNode {
		return n.text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Find returns the nodes in this subtree, the node itself included, that
// match a CSS selector, in document order. An invalid selector matches nothing.
func (n *Node) Find(selector string) []*Node {
	root, index := n.toHTML()
	wrapper := &html.Node{Type: html.DocumentNode}
	wrapper.AppendChild(root)

	sel := goquery.NewDocumentFromNode(wrapper).Find(selector)
	out := make([]*Node, 0, sel.Length())
	for _, h := range sel.Nodes {
		if m, ok := index[h]; ok {
			out = append(out, m)
		}
	}
	return out
}

// First is Find limited to the first match, or nil.
func (n *Node) First(selector string) *Node {
	if found := n.Find(selector); len(found) > 0 {
		return found[0]
	}
	return nil
}

// OuterHTML serialises the node and its subtree.
func (n *Node) OuterHTML() string {
	root, _ := n.toHTML()
	var b strings.Builder
	_ = html.Render(&b, root)
	return b.String()
}

func (n *Node) toHTML() (*html.Node, map[*html.Node]*Node) {
	index := make(map[*html.Node]*Node)
	var conv func(m *Node) *html.Node
	conv = func(m *Node) *html.Node {
		h := &html.Node{}
		if m.typ == TextNode {
			h.Type = html.TextNode
			h.Data = m.text
		} else {
			h.Type = html.ElementNode
			h.Data = m.tag
			h.DataAtom = atom.Lookup([]byte(m.tag))
			h.Attr = slices.Clone(m.attrs)
		}
		index[h] = m
		for _, c := range m.children {
			h.AppendChild(conv(c))
		}
		return h
	}
	return conv(n), index
}

// Event is the event handed to listeners by Dispatch.
type Event struct {
	typ    string
	target *Node
}

func (e *Event) Type() string { return e.typ }

func (e *Event) Target() dom.Element { return e.target }
