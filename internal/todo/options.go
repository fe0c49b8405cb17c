package todo

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoweb/internal/model"
)

// Class names and ids the stylesheet and tests rely on.
const (
	ClassList          = "todo-list"
	ClassAddRow        = "add-todo"
	ClassCompleted     = "completed"
	ClassPendingDelete = "beforeRemove"

	IDTasks     = "tasks"
	IDNewTodo   = "new-todo"
	IDAddButton = "add-btn"
)

// Labels are the user-visible strings of the widget.
type Labels struct {
	Heading     string
	Placeholder string
	Add         string
	Delete      string
}

func DefaultLabels() Labels {
	return Labels{
		Heading:     "TODO List",
		Placeholder: "Задание",
		Add:         "+",
		Delete:      "🗑️",
	}
}

type settings struct {
	labels Labels
	tasks  []model.Task
	log    *log.Logger
}

// Option configures a view.
type Option func(*settings)

// WithLabels replaces the default labels.
func WithLabels(l Labels) Option {
	return func(s *settings) { s.labels = l }
}

// WithTasks sets the tasks a List starts with. nil starts it empty.
func WithTasks(tasks []model.Task) Option {
	return func(s *settings) { s.tasks = tasks }
}

// WithLogger sets the logger state changes and listener failures go to.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		labels: DefaultLabels(),
		tasks:  model.DefaultTasks(),
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
