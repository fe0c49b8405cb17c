package todo

import (
	"github.com/idilsaglam/todoweb/internal/component"
	"github.com/idilsaglam/todoweb/internal/dom"
	"github.com/idilsaglam/todoweb/internal/el"
)

// AddRow is the text field and button that add a task. Submitting does not
// clear the draft; the list replaces the whole AddRow when it re-renders.
type AddRow struct {
	*component.Component
	doc   dom.Document
	s     *settings
	onAdd func(text string)
	draft string
}

func NewAddRow(doc dom.Document, onAdd func(text string), opts ...Option) *AddRow {
	return newAddRow(doc, newSettings(opts), onAdd)
}

func newAddRow(doc dom.Document, s *settings, onAdd func(string)) *AddRow {
	r := &AddRow{doc: doc, s: s, onAdd: onAdd}
	r.Component = component.New(r)
	return r
}

func (r *AddRow) Draft() string { return r.draft }

func (r *AddRow) Render() dom.Node {
	input := el.Build(r.doc, "input", el.Attrs{
		"id":          IDNewTodo,
		"type":        "text",
		"placeholder": r.s.labels.Placeholder,
	}, nil, el.On("input", r.onInput))

	button := el.Build(r.doc, "button", el.Attrs{"id": IDAddButton}, el.Text(r.s.labels.Add),
		el.On("click", func(dom.Event) { r.Submit() }))

	return el.Build(r.doc, "div", el.Attrs{"class": ClassAddRow}, el.Many(
		el.Node(input),
		el.Node(button),
	))
}

// Submit passes the current draft to the add callback.
func (r *AddRow) Submit() {
	if r.onAdd != nil {
		r.onAdd(r.draft)
	}
}

func (r *AddRow) onInput(e dom.Event) {
	if t := e.Target(); t != nil {
		r.draft = t.Value()
	}
}
