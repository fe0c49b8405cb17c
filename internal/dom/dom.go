// Package dom describes the host document the widget renders into.
//
// The widget never talks to a concrete document directly. Two backends
// implement these interfaces: memdom (an in-memory tree used by tests and the
// terminal host) and jsdom (the browser DOM, built only for js/wasm).
package dom

// Listener handles one dispatched event.
type Listener func(Event)

// Event is a dispatched event as seen by a listener.
type Event interface {
	Type() string
	Target() Element
}

// Node is anything that can sit in the document tree: elements and text.
type Node interface {
	// ReplaceWith swaps this node for next in its parent.
	// It is a no-op when the node is detached or next belongs to another backend.
	ReplaceWith(next Node)
}

// Element is a node that carries a tag, attributes, children and listeners.
type Element interface {
	Node
	Tag() string
	SetAttribute(name, value string)
	AppendChild(child Node)
	AddEventListener(typ string, fn Listener)
	// Value is the live value of a form field ("" for other elements).
	Value() string
}

// Document creates nodes and exposes the mount point.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(text string) Node
	Body() Element
}
