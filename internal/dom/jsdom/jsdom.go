//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser document.
package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/idilsaglam/todoweb/internal/dom"
)

// Document wraps the global browser document.
type Document struct {
	v js.Value
}

// New returns the page's document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{node: node{v: d.v.Call("createElement", tag)}}
}

func (d *Document) CreateTextNode(text string) dom.Node {
	return &node{v: d.v.Call("createTextNode", text)}
}

func (d *Document) Body() dom.Element {
	return &Element{node: node{v: d.v.Get("body")}}
}

// OnReady runs fn once the document has been parsed.
func (d *Document) OnReady(fn func()) {
	if d.v.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var ready js.Func
	ready = js.FuncOf(func(js.Value, []js.Value) any {
		ready.Release()
		fn()
		return nil
	})
	d.v.Call("addEventListener", "DOMContentLoaded", ready, map[string]any{"once": true})
}

type valuer interface {
	jsValue() js.Value
	tracker() *handle
}

type node struct {
	v js.Value
	h handle
}

func (n *node) jsValue() js.Value { return n.v }

func (n *node) tracker() *handle { return &n.h }

// ReplaceWith swaps n for next in the page and releases the listener functions
// of n's subtree. A node without a parent is left alone.
func (n *node) ReplaceWith(next dom.Node) {
	nv, ok := next.(valuer)
	if !ok {
		return
	}
	if p := n.v.Get("parentNode"); p.IsNull() || p.IsUndefined() {
		return
	}
	n.v.Call("replaceWith", nv.jsValue())
	n.h.replace(nv.tracker())
}

// Element owns the js.Func values backing its listeners. Its handle links it
// to the wrappers around it so a replaced subtree can release them.
type Element struct {
	node
}

func (e *Element) Tag() string {
	return strings.ToLower(e.v.Get("tagName").String())
}

func (e *Element) SetAttribute(name, value string) {
	e.v.Call("setAttribute", name, value)
}

func (e *Element) AppendChild(child dom.Node) {
	c, ok := child.(valuer)
	if !ok {
		return
	}
	e.v.Call("appendChild", c.jsValue())
	e.h.adopt(c.tracker())
}

func (e *Element) AddEventListener(typ string, fn dom.Listener) {
	if fn == nil {
		return
	}
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&event{v: args[0]})
		}
		return nil
	})
	e.h.onRelease(f.Release)
	e.v.Call("addEventListener", typ, f)
}

func (e *Element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

type event struct {
	v js.Value
}

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) Target() dom.Element {
	return &Element{node: node{v: e.v.Get("target")}}
}
