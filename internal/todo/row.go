package todo

import (
	"github.com/idilsaglam/todoweb/internal/component"
	"github.com/idilsaglam/todoweb/internal/dom"
	"github.com/idilsaglam/todoweb/internal/el"
	"github.com/idilsaglam/todoweb/internal/model"
)

// Row displays one task. It mutates the task it was given in place and needs
// two clicks on its delete button to remove it.
type Row struct {
	*component.Component
	doc      dom.Document
	s        *settings
	task     *model.Task
	onDelete func() error
	clicks   int
}

// NewRow builds a row for task. onDelete is called on the confirming click.
func NewRow(doc dom.Document, task *model.Task, onDelete func() error, opts ...Option) *Row {
	return newRow(doc, newSettings(opts), task, onDelete)
}

func newRow(doc dom.Document, s *settings, task *model.Task, onDelete func() error) *Row {
	r := &Row{doc: doc, s: s, task: task, onDelete: onDelete}
	r.Component = component.New(r)
	return r
}

// Pending reports whether the first delete click has been made.
func (r *Row) Pending() bool { return r.clicks == 1 }

func (r *Row) Render() dom.Node {
	item := el.Attrs{}
	if r.task.Done {
		item["class"] = ClassCompleted
	}
	del := el.Attrs{}
	if r.Pending() {
		del["class"] = ClassPendingDelete
	}

	return el.Build(r.doc, "li", item, el.Many(
		el.Node(el.Build(r.doc, "input", el.Attrs{"type": "checkbox", "checked": r.task.Done}, nil,
			el.On("click", r.onToggle))),
		el.Node(el.Build(r.doc, "label", nil, el.Text(r.task.Text))),
		el.Node(el.Build(r.doc, "button", del, el.Text(r.s.labels.Delete),
			el.On("click", r.onDeleteClick))),
	))
}

// Toggle flips the task and re-renders this row only.
func (r *Row) Toggle() error {
	r.task.Done = !r.task.Done
	r.s.log.Debug("task toggled", "text", r.task.Text, "done", r.task.Done)
	return r.Update()
}

// ClickDelete counts a delete click. The first one re-renders the row in the
// pending state; the second hands over to onDelete and leaves the row alone,
// since the list is about to discard it.
func (r *Row) ClickDelete() error {
	r.clicks++
	if r.clicks == 2 && r.onDelete != nil {
		return r.onDelete()
	}
	r.s.log.Debug("delete armed", "text", r.task.Text)
	return r.Update()
}

func (r *Row) onToggle(dom.Event) {
	if err := r.Toggle(); err != nil {
		r.s.log.Error("toggle task", "text", r.task.Text, "err", err)
	}
}

func (r *Row) onDeleteClick(dom.Event) {
	if err := r.ClickDelete(); err != nil {
		r.s.log.Error("delete task", "text", r.task.Text, "err", err)
	}
}
