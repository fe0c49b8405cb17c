// Package term hosts the widget in a terminal. The widget is mounted into an
// in-memory document; this package plays the browser: it moves focus between
// fields and buttons, turns keys into click and input events, and draws the
// document after every change.
package term

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoweb/internal/dom/memdom"
	"github.com/idilsaglam/todoweb/internal/logging"
	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/todo"
	"github.com/idilsaglam/todoweb/internal/ui"
)

// focusable is what can take keyboard focus, in document order.
const focusable = "input, button"

// Options configure the host.
type Options struct {
	Theme  ui.Theme
	Logger *log.Logger
	// List is passed to todo.Mount.
	List []todo.Option
}

// Model is the Bubble Tea model around a mounted list.
type Model struct {
	doc   *memdom.Document
	list  *todo.List
	theme ui.Theme
	keys  keyMap
	help  help.Model
	input textinput.Model
	log   *log.Logger

	targets []*memdom.Node
	focus   int
	// focused is the node the text input was last synced from.
	focused *memdom.Node
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	doc := memdom.NewDocument()
	list := todo.Mount(doc, append(opts.List, todo.WithLogger(logger))...)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		doc:   doc,
		list:  list,
		theme: opts.Theme,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: ti,
		log:   logger,
	}
	m.refresh()
	return m
}

// Tasks returns the list's current tasks.
func (m Model) Tasks() []model.Task { return m.list.Tasks() }

// Document exposes the document the widget is mounted in.
func (m Model) Document() *memdom.Document { return m.doc }

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, m.refresh()
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, m.refresh()
		}

		cur := m.current()
		if cur == nil {
			return m, nil
		}
		if isTextField(cur) {
			if msg.Type == tea.KeyEnter {
				m.submit()
				return m, m.refresh()
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if v := m.input.Value(); v != cur.Value() {
				cur.SetValue(v)
				cur.Dispatch("input")
			}
			return m, tea.Batch(cmd, m.refresh())
		}
		if key.Matches(msg, m.keys.Press) {
			m.press(cur)
			return m, m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) move(delta int) {
	n := len(m.targets)
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m Model) current() *memdom.Node {
	if m.focus < 0 || m.focus >= len(m.targets) {
		return nil
	}
	return m.targets[m.focus]
}

// press clicks n the way a mouse would.
func (m *Model) press(n *memdom.Node) {
	if n.Dispatch("click") == 0 {
		m.log.Debug("press without listener", "tag", n.Tag())
	}
}

// submit presses the first button after the focused field. Focus stays on
// the field's position so the next task can be typed straight away.
func (m *Model) submit() {
	for _, n := range m.targets[m.focus+1:] {
		if n.Tag() == "button" {
			m.press(n)
			return
		}
	}
}

// refresh re-reads focus targets after the document may have been rebuilt and
// syncs the text input when the focused node changed.
func (m *Model) refresh() tea.Cmd {
	m.targets = m.doc.BodyNode().Find(focusable)
	if m.focus >= len(m.targets) {
		m.focus = len(m.targets) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}

	cur := m.current()
	if cur == m.focused {
		return nil
	}
	m.focused = cur
	if cur != nil && isTextField(cur) {
		m.input.Placeholder, _ = cur.Attribute("placeholder")
		m.input.SetValue(cur.Value())
		m.input.CursorEnd()
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func isTextField(n *memdom.Node) bool {
	if n.Tag() != "input" {
		return false
	}
	typ, _ := n.Attribute("type")
	return typ == "" || typ == "text"
}

// Run starts the Bubble Tea program and returns the tasks as they were when
// the user quit.
func Run(opts Options) ([]model.Task, error) {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return finalTasks(final)
}

func finalTasks(final tea.Model) ([]model.Task, error) {
	fm, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("term: unexpected final model %T", final)
	}
	return fm.Tasks(), nil
}
