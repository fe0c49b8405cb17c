package term

import (
	"strings"

	"github.com/idilsaglam/todoweb/internal/dom/memdom"
	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/todo"
	"github.com/idilsaglam/todoweb/internal/ui"
)

var inlineTags = map[string]bool{
	"input":  true,
	"button": true,
	"label":  true,
	"span":   true,
}

func (m Model) View() string {
	var blocks []string
	for _, c := range m.doc.BodyNode().Children() {
		blocks = append(blocks, m.render(c))
	}

	tasks := m.list.Tasks()
	done, _ := model.Stats(tasks)
	footer := m.theme.Muted.Render(ui.ProgressBar(done, len(tasks), 28))

	return m.theme.Panel(strings.Join(blocks, "\n"), "", footer, m.help.View(m.keys))
}

func (m Model) render(n *memdom.Node) string {
	if n.Type() == memdom.TextNode {
		return n.TextContent()
	}

	switch n.Tag() {
	case "h1", "h2", "h3":
		return m.theme.Title.Render(n.TextContent())
	case "input":
		return m.renderInput(n)
	case "button":
		return m.renderButton(n)
	case "label":
		text := n.TextContent()
		if p := n.Parent(); p != nil && p.HasClass(todo.ClassCompleted) {
			return m.theme.Done.Render(text)
		}
		return text
	case "ul", "ol":
		items := n.Children()
		if len(items) == 0 {
			return m.theme.Muted.Render("  (none)")
		}
		lines := make([]string, 0, len(items))
		for _, li := range items {
			lines = append(lines, "  "+m.render(li))
		}
		return strings.Join(lines, "\n")
	}

	children := n.Children()
	parts := make([]string, 0, len(children))
	inline := true
	for _, c := range children {
		if c.Type() == memdom.ElementNode && !inlineTags[c.Tag()] {
			inline = false
		}
		parts = append(parts, m.render(c))
	}
	if inline {
		return strings.Join(parts, " ")
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderInput(n *memdom.Node) string {
	focused := n == m.current()
	if isTextField(n) {
		if focused {
			return m.input.View()
		}
		if v := n.Value(); v != "" {
			return "  " + v
		}
		placeholder, _ := n.Attribute("placeholder")
		return "  " + m.theme.Muted.Render(placeholder)
	}

	box := m.theme.Muted.Render(m.theme.BoxUnchecked)
	if n.HasAttribute("checked") {
		box = m.theme.Success.Render(m.theme.BoxChecked)
	}
	if focused {
		return m.theme.Selected.Render(box)
	}
	return box
}

func (m Model) renderButton(n *memdom.Node) string {
	s := "[" + n.TextContent() + "]"
	if n.HasClass(todo.ClassPendingDelete) {
		s = m.theme.Pending.Render(s)
	}
	if n == m.current() {
		return m.theme.Selected.Render(s)
	}
	return s
}
