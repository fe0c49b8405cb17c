package memdom

import (
	"testing"

	"github.com/idilsaglam/todoweb/internal/dom"
)

func TestSetAttribute(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("INPUT").(*Node)
	n.SetAttribute("type", "text")
	n.SetAttribute("value", "draft")
	n.SetAttribute("type", "checkbox")

	if n.Tag() != "input" {
		t.Errorf("Tag() = %q, want input", n.Tag())
	}
	if got, _ := n.Attribute("type"); got != "checkbox" {
		t.Errorf("type = %q, want checkbox", got)
	}
	if len(n.Attributes()) != 2 {
		t.Errorf("len(Attributes()) = %d, want 2", len(n.Attributes()))
	}
	if n.Value() != "draft" {
		t.Errorf("Value() = %q, want draft", n.Value())
	}
	if n.HasAttribute("checked") {
		t.Error("checked should not be present")
	}
}

func TestHasClass(t *testing.T) {
	n := newElement("li")
	n.SetAttribute("class", "row  completed")

	if !n.HasClass("completed") {
		t.Error("HasClass(completed) = false, want true")
	}
	if n.HasClass("comp") {
		t.Error("HasClass(comp) = true, want false")
	}
}

func TestAppendChildMovesNode(t *testing.T) {
	a, b := newElement("div"), newElement("div")
	c := newElement("span")

	a.AppendChild(c)
	b.AppendChild(c)

	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if c.Parent() != b {
		t.Error("child not re-parented")
	}
}

func TestAppendChildIgnoresForeignNodes(t *testing.T) {
	type foreign struct{ dom.Node }
	a := newElement("div")
	a.AppendChild(foreign{})
	a.AppendChild((*Node)(nil))

	if len(a.Children()) != 0 {
		t.Errorf("Children() len = %d, want 0", len(a.Children()))
	}
}

func TestReplaceWith(t *testing.T) {
	doc := NewDocument()
	body := doc.BodyNode()
	first, old, last := newElement("p"), newElement("p"), newElement("p")
	body.AppendChild(first)
	body.AppendChild(old)
	body.AppendChild(last)

	next := newElement("section")
	old.ReplaceWith(next)

	kids := body.Children()
	if len(kids) != 3 || kids[1] != next {
		t.Fatalf("children = %v, want replacement at index 1", kids)
	}
	if old.Parent() != nil {
		t.Error("replaced node still has a parent")
	}
	if next.Parent() != body {
		t.Error("replacement not adopted by parent")
	}
}

func TestReplaceWithDetachedIsNoop(t *testing.T) {
	old, next := newElement("p"), newElement("p")
	old.ReplaceWith(next)
	if next.Parent() != nil {
		t.Error("detached replace should not attach next")
	}
}

func TestDispatchOrderAndType(t *testing.T) {
	n := newElement("button")
	var got []string
	n.AddEventListener("click", func(e dom.Event) { got = append(got, "a:"+e.Type()) })
	n.AddEventListener("input", func(dom.Event) { got = append(got, "input") })
	n.AddEventListener("click", func(e dom.Event) {
		if e.Target() != dom.Element(n) {
			t.Error("target mismatch")
		}
		got = append(got, "b")
	})

	if fired := n.Dispatch("click"); fired != 2 {
		t.Errorf("Dispatch() = %d, want 2", fired)
	}
	if len(got) != 2 || got[0] != "a:click" || got[1] != "b" {
		t.Errorf("listener calls = %v", got)
	}
}

func TestFind(t *testing.T) {
	doc := NewDocument()
	ul := newElement("ul")
	ul.SetAttribute("id", "tasks")
	for _, class := range []string{"completed", "", "completed"} {
		li := newElement("li")
		if class != "" {
			li.SetAttribute("class", class)
		}
		ul.AppendChild(li)
	}
	doc.BodyNode().AppendChild(ul)

	body := doc.BodyNode()
	if got := len(body.Find("#tasks > li")); got != 3 {
		t.Errorf("Find(li) = %d, want 3", got)
	}
	if got := len(body.Find("li.completed")); got != 2 {
		t.Errorf("Find(li.completed) = %d, want 2", got)
	}
	if body.First("#tasks") != ul {
		t.Error("First(#tasks) did not return the list")
	}
	if ul.First("ul") != ul {
		t.Error("Find should match the root node itself")
	}
	if got := body.Find("[[["); len(got) != 0 {
		t.Errorf("invalid selector matched %d nodes", len(got))
	}
}

func TestOuterHTMLAndText(t *testing.T) {
	doc := NewDocument()
	div := doc.CreateElement("div").(*Node)
	div.SetAttribute("class", "todo-list")
	div.AppendChild(doc.CreateTextNode("a < b"))
	in := newElement("input")
	in.SetAttribute("checked", "")
	div.AppendChild(in)

	want := `<div class="todo-list">a &lt; b<input checked=""/></div>`
	if got := div.OuterHTML(); got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}
	if got := div.TextContent(); got != "a < b" {
		t.Errorf("TextContent() = %q", got)
	}
}
