// Package el builds document elements declaratively.
//
//	el.Build(doc, "li", el.Attrs{"class": "completed"}, el.Many(
//	    el.Node(checkbox),
//	    el.Text("Buy milk"),
//	), el.On("click", handler))
//
// Build has no side effects beyond creating the element and its text children.
package el

import (
	"maps"
	"slices"

	"github.com/idilsaglam/todoweb/internal/dom"
)

// Attrs maps attribute names to values. A string is set verbatim; true sets
// the attribute as present with an empty value. false and values of any other
// type are skipped, so callers normally omit a key rather than pass false.
type Attrs map[string]any

// Listener pairs an event type with its handler.
type Listener struct {
	Type   string
	Handle dom.Listener
}

// On is shorthand for a Listener literal.
func On(typ string, fn dom.Listener) Listener {
	return Listener{Type: typ, Handle: fn}
}

// Children is the child specification of an element: None, Text, Node or Many.
// A nil Children means no children.
type Children interface {
	appendTo(doc dom.Document, parent dom.Element)
}

// Child is a single text or node child. It can be used on its own as Children
// or as an entry of Many.
type Child interface {
	Children
	isChild()
}

type none struct{}

func (none) appendTo(dom.Document, dom.Element) {}

// None is the empty child specification.
func None() Children { return none{} }

type textChild string

func (t textChild) appendTo(doc dom.Document, parent dom.Element) {
	parent.AppendChild(doc.CreateTextNode(string(t)))
}

func (textChild) isChild() {}

// Text is one text node child.
func Text(s string) Child { return textChild(s) }

type nodeChild struct {
	n dom.Node
}

func (c nodeChild) appendTo(_ dom.Document, parent dom.Element) {
	if c.n != nil {
		parent.AppendChild(c.n)
	}
}

func (nodeChild) isChild() {}

// Node adopts an already built node as a child. A nil node is dropped.
func Node(n dom.Node) Child { return nodeChild{n: n} }

type many []Child

func (m many) appendTo(doc dom.Document, parent dom.Element) {
	for _, c := range m {
		if c == nil {
			continue
		}
		c.appendTo(doc, parent)
	}
}

// Many is an ordered list of text and node children. nil entries are dropped.
func Many(children ...Child) Children { return many(children) }

// Build creates a tag element, sets attrs, appends children in order and
// registers listeners in order.
func Build(doc dom.Document, tag string, attrs Attrs, children Children, listeners ...Listener) dom.Element {
	e := doc.CreateElement(tag)

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		switch v := attrs[name].(type) {
		case string:
			e.SetAttribute(name, v)
		case bool:
			if v {
				e.SetAttribute(name, "")
			}
		}
	}

	if children != nil {
		children.appendTo(doc, e)
	}

	for _, l := range listeners {
		if l.Handle == nil {
			continue
		}
		e.AddEventListener(l.Type, l.Handle)
	}
	return e
}
