// Package component is the render/update base shared by the widget's views.
//
// A Component has no diffing: every Update throws the old subtree away and
// renders a new one in its place. Views that need private state keep it in
// the struct embedding the Component; building a new view resets that state.
package component

import (
	"errors"

	"github.com/idilsaglam/todoweb/internal/dom"
)

// ErrInvalidState is returned by Update on a component that was never rendered.
var ErrInvalidState = errors.New("component: update before first render")

// Renderer produces a fresh node reflecting the current state.
type Renderer interface {
	Render() dom.Node
}

// Component tracks the node currently displayed for a Renderer.
type Component struct {
	r    Renderer
	node dom.Node
}

func New(r Renderer) *Component {
	return &Component{r: r}
}

// Node renders and remembers the result. It renders again on every call.
func (c *Component) Node() dom.Node {
	c.node = c.r.Render()
	return c.node
}

func (c *Component) Mounted() bool { return c.node != nil }

// Update renders a new node and swaps it in for the current one.
func (c *Component) Update() error {
	if c.node == nil {
		return ErrInvalidState
	}
	next := c.r.Render()
	c.node.ReplaceWith(next)
	c.node = next
	return nil
}
