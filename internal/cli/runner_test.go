package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/todoweb/internal/config"
	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/ui"
)

func run(t *testing.T, cfg *config.Config, group bool, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, Options{
		Group:  group,
		Config: cfg,
		Theme:  ui.NewTheme("mono"),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return code, stdout.String(), stderr.String()
}

func TestHelpAndUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no args", nil, 2},
		{"help", []string{"help"}, 0},
		{"--help", []string{"--help"}, 0},
		{"unknown", []string{"frobnicate"}, 2},
		{"extra args", []string{"html", "now"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := run(t, nil, false, tt.args...)
			if code != tt.code {
				t.Errorf("Run(%v) = %d, want %d", tt.args, code, tt.code)
			}
		})
	}
}

func TestUnknownWithArgs(t *testing.T) {
	code, _, stderr := run(t, nil, false, "foo", "bar")
	if code != 2 {
		t.Errorf("Run(foo bar) = %d, want 2", code)
	}
	if !strings.Contains(stderr, "unknown subcommand: foo") {
		t.Errorf("stderr = %q, want unknown subcommand", stderr)
	}
	if strings.Contains(stderr, "takes no arguments") {
		t.Errorf("stderr should not report an argument count: %q", stderr)
	}
}

func TestHTML(t *testing.T) {
	code, out, _ := run(t, nil, false, "html")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	for _, want := range []string{
		`<body><div class="todo-list"><h1>TODO List</h1>`,
		`<input id="new-todo" placeholder="Задание" type="text"/>`,
		`<button id="add-btn">+</button>`,
		`<ul id="tasks"><li><input type="checkbox"/><label>Съесть яблоко</label><button>🗑️</button></li>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("html missing %s\n%s", want, out)
		}
	}
}

func TestListGrouped(t *testing.T) {
	cfg := config.Default()
	cfg.Tasks = []model.Task{{Text: "eggs", Done: true}, {Text: "ham"}}

	code, out, _ := run(t, cfg, true, "ls")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	pending := strings.Index(out, "Pending")
	done := strings.Index(out, "Done")
	if pending < 0 || done < pending {
		t.Fatalf("groups out of order:\n%s", out)
	}
	if ham := strings.Index(out, "ham"); ham < pending || ham > done {
		t.Error("ham should be listed as pending")
	}
	if eggs := strings.Index(out, "eggs"); eggs < done {
		t.Error("eggs should be listed as done")
	}
	if !strings.Contains(out, " 50%") {
		t.Errorf("progress missing:\n%s", out)
	}
}

func TestSeedFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(`[{"text": "from file"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte(`[{"title": "wrong key"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.SeedFile = good
	code, out, _ := run(t, cfg, false, "ls")
	if code != 0 || !strings.Contains(out, "from file") || strings.Contains(out, "Лечь спать") {
		t.Errorf("ls with seed file = %d:\n%s", code, out)
	}

	cfg.SeedFile = bad
	code, _, errOut := run(t, cfg, false, "html")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "invalid seed file") {
		t.Errorf("stderr = %q", errOut)
	}
}
