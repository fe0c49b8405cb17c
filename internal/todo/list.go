// Package todo is the todo-list widget: a List of task Rows with an AddRow on
// top. Every view re-renders its whole subtree on change. The List rebuilds
// all Rows and the AddRow on each update, which is also what clears a row's
// pending delete and the add field's draft.
package todo

import (
	"slices"

	"github.com/idilsaglam/todoweb/internal/component"
	"github.com/idilsaglam/todoweb/internal/dom"
	"github.com/idilsaglam/todoweb/internal/el"
	"github.com/idilsaglam/todoweb/internal/model"
)

// List is the root view. It owns the task collection.
type List struct {
	*component.Component
	doc   dom.Document
	s     *settings
	tasks []*model.Task
}

func NewList(doc dom.Document, opts ...Option) *List {
	s := newSettings(opts)
	l := &List{doc: doc, s: s, tasks: make([]*model.Task, 0, len(s.tasks))}
	for _, t := range s.tasks {
		task := t
		l.tasks = append(l.tasks, &task)
	}
	l.Component = component.New(l)
	return l
}

// Mount builds a List and appends it to the document body.
func Mount(doc dom.Document, opts ...Option) *List {
	l := NewList(doc, opts...)
	doc.Body().AppendChild(l.Node())
	l.s.log.Debug("mounted", "tasks", len(l.tasks))
	return l
}

// Tasks returns a copy of the collection in display order.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = *t
	}
	return out
}

func (l *List) Render() dom.Node {
	rows := make([]el.Child, 0, len(l.tasks))
	for _, task := range l.tasks {
		row := newRow(l.doc, l.s, task, func() error { return l.remove(task) })
		rows = append(rows, el.Node(row.Node()))
	}
	add := newAddRow(l.doc, l.s, l.onAdd)

	return el.Build(l.doc, "div", el.Attrs{"class": ClassList}, el.Many(
		el.Node(el.Build(l.doc, "h1", nil, el.Text(l.s.labels.Heading))),
		el.Node(add.Node()),
		el.Node(el.Build(l.doc, "ul", el.Attrs{"id": IDTasks}, el.Many(rows...))),
	))
}

// AddTask appends a not-done task and re-renders the list.
func (l *List) AddTask(text string) error {
	l.tasks = append(l.tasks, &model.Task{Text: text})
	l.s.log.Debug("task added", "text", text, "tasks", len(l.tasks))
	return l.Update()
}

func (l *List) onAdd(text string) {
	if err := l.AddTask(text); err != nil {
		l.s.log.Error("add task", "err", err)
	}
}

// remove drops task by identity. A task that is already gone is ignored.
func (l *List) remove(task *model.Task) error {
	i := slices.Index(l.tasks, task)
	if i < 0 {
		return nil
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	l.s.log.Debug("task deleted", "text", task.Text, "tasks", len(l.tasks))
	return l.Update()
}
