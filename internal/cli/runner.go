package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoweb/internal/config"
	"github.com/idilsaglam/todoweb/internal/dom/memdom"
	"github.com/idilsaglam/todoweb/internal/logging"
	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/server"
	"github.com/idilsaglam/todoweb/internal/store/jsonstore"
	"github.com/idilsaglam/todoweb/internal/term"
	"github.com/idilsaglam/todoweb/internal/todo"
	"github.com/idilsaglam/todoweb/internal/ui"
)

// Options tune behavior from root flags and configuration.
type Options struct {
	Group  bool // ls grouped by pending/done
	Config *config.Config
	Theme  ui.Theme
	Logger *log.Logger

	Stdout io.Writer
	Stderr io.Writer
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Theme.Name == "" {
		o.Theme = ui.NewTheme(o.Config.Theme)
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Stdout)
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0
	}

	do, ok := commands[cmd]
	if !ok {
		opt.Theme.Fail(opt.Stderr, "unknown subcommand: "+cmd)
		fmt.Fprintln(opt.Stderr)
		PrintHelp(opt.Stderr)
		return 2
	}
	if len(a) != 0 {
		opt.Theme.Fail(opt.Stderr, fmt.Sprintf("usage: todo %s (takes no arguments)", cmd))
		return 2
	}
	return do(opt)
}

var commands = map[string]func(Options) int{
	"run":   doRun,
	"html":  doHTML,
	"ls":    doList,
	"serve": doServe,
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `todo - a todo-list widget for the browser and the terminal

Usage:
  todo [flags] <subcommand>

Subcommands:
  run       Open the widget in the terminal
  html      Print the widget's initial markup
  ls        List the tasks the widget starts with
  serve     Serve the WASM build (web/main.wasm) over HTTP

Flags:
  -config <file>   Config file (default todo.toml if present)
  -theme <name>    classic, neon or mono
  -group           Group ls output by pending/done

Examples:
  todo run
  todo -theme neon ls
  GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/todo-wasm && todo serve
`)
}

// -------------- subcommand impls ----------------

func doRun(opt Options) int {
	tasks, err := seedTasks(opt.Config)
	if err != nil {
		opt.Theme.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}

	// The terminal is taken by the UI, so the widget logs to a file or nowhere.
	widgetLog := logging.Discard()
	if path := opt.Config.LogFile; path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			opt.Theme.Fail(opt.Stderr, "log file: "+err.Error())
			return 1
		}
		defer f.Close()
		lo := logging.DefaultOptions()
		lo.Level = logging.ParseLevel(opt.Config.LogLevel)
		lo.Formatter = logging.ParseFormatter(opt.Config.LogFormat)
		lo.ReportTimestamp = true
		widgetLog = logging.New(f, lo)
	}

	final, err := term.Run(term.Options{
		Theme:  opt.Theme,
		Logger: widgetLog,
		List:   listOptions(opt.Config, tasks),
	})
	if err != nil {
		opt.Theme.Fail(opt.Stderr, "run: "+err.Error())
		return 1
	}
	d, _ := model.Stats(final)
	opt.Theme.OK(opt.Stdout, fmt.Sprintf("%d tasks, %d done", len(final), d))
	return 0
}

func doHTML(opt Options) int {
	tasks, err := seedTasks(opt.Config)
	if err != nil {
		opt.Theme.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}
	doc := memdom.NewDocument()
	todo.Mount(doc, append(listOptions(opt.Config, tasks), todo.WithLogger(opt.Logger))...)
	fmt.Fprintln(opt.Stdout, doc.BodyNode().OuterHTML())
	return 0
}

func doServe(opt Options) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := opt.Config.Serve
	h := server.NewRouter(cfg.WebDir, opt.Logger)
	if err := server.ListenAndServe(ctx, cfg.Addr, h, opt.Logger); err != nil {
		opt.Theme.Fail(opt.Stderr, "serve: "+err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	items, err := seedTasks(opt.Config)
	if err != nil {
		opt.Theme.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}
	th := opt.Theme

	d, p := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render(opt.Config.Labels.Heading),
		th.Success.Render("✔"), d,
		th.Pending.Render("•"), p,
		th.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, th.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(th, items)...)
	} else {
		lines = append(lines, flatLines(th, items)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render("Tip: open the widget with `todo run`"))
	fmt.Fprintln(opt.Stdout, th.Panel(lines...))
	return 0
}

// -------------- helpers --------------

func seedTasks(cfg *config.Config) ([]model.Task, error) {
	if cfg.SeedFile == "" {
		return cfg.Tasks, nil
	}
	return jsonstore.Load(cfg.SeedFile)
}

func listOptions(cfg *config.Config, tasks []model.Task) []todo.Option {
	return []todo.Option{
		todo.WithTasks(tasks),
		todo.WithLabels(todo.Labels{
			Heading:     cfg.Labels.Heading,
			Placeholder: cfg.Labels.Placeholder,
			Add:         cfg.Labels.Add,
			Delete:      cfg.Labels.Delete,
		}),
	}
}

func flatLines(th ui.Theme, items []model.Task) []string {
	if len(items) == 0 {
		return []string{th.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := th.Muted.Render(th.BoxUnchecked)
		text := it.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		if it.Done {
			box = th.Success.Render(th.BoxChecked)
			text = th.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", th.Muted.Render(idx), box, text))
	}
	return out
}

func groupLines(th ui.Theme, items []model.Task) []string {
	var pend, done []model.Task
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, th.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(th, pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(th, done)...)
	}
	return lines
}
