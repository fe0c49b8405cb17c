package jsdom

import "slices"

// handle mirrors the wrapper tree on the Go side. The browser tree cannot
// tell us which js.Func values hang below a node, so each wrapper records its
// parent, its children and the release hooks of its own listeners.
type handle struct {
	parent   *handle
	children []*handle
	hooks    []func()
}

func (h *handle) onRelease(fn func()) {
	h.hooks = append(h.hooks, fn)
}

// adopt makes c a child of h, detaching it from any previous parent first.
func (h *handle) adopt(c *handle) {
	if c == nil || c == h {
		return
	}
	c.detach()
	c.parent = h
	h.children = append(h.children, c)
}

func (h *handle) detach() {
	p := h.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, h); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	h.parent = nil
}

// replace puts next in h's place under h's parent and releases h's subtree.
func (h *handle) replace(next *handle) {
	if next == nil || next == h {
		return
	}
	next.detach()
	if p := h.parent; p != nil {
		if i := slices.Index(p.children, h); i >= 0 {
			p.children[i] = next
			next.parent = p
		}
		h.parent = nil
	}
	h.release()
}

// release runs every hook in the subtree rooted at h and forgets the subtree.
func (h *handle) release() {
	for _, fn := range h.hooks {
		fn()
	}
	h.hooks = nil
	for _, c := range h.children {
		c.parent = nil
		c.release()
	}
	h.children = nil
}
