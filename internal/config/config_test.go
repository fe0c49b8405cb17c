package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/todo"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Labels.Heading != "TODO List" {
		t.Errorf("Heading: got %q", cfg.Labels.Heading)
	}
	if len(cfg.Tasks) != 3 {
		t.Errorf("Tasks: got %d, want 3", len(cfg.Tasks))
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.Serve.Addr != DefaultAddr || cfg.Serve.WebDir != DefaultWebDir {
		t.Errorf("Serve: got %+v", cfg.Serve)
	}
}

func TestDefaultLabelsMatchWidget(t *testing.T) {
	l := todo.DefaultLabels()
	got := Default().Labels
	want := LabelsConfig{Heading: l.Heading, Placeholder: l.Placeholder, Add: l.Add, Delete: l.Delete}
	if got != want {
		t.Errorf("Labels = %+v, want %+v", got, want)
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "todo.toml", `
theme = "neon"
log_level = "debug"

[labels]
heading = "Groceries"

[[tasks]]
text = "eggs"
done = true

[serve]
addr = ":9090"
`)

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "neon" || cfg.LogLevel != "debug" {
		t.Errorf("theme/log_level: got %q/%q", cfg.Theme, cfg.LogLevel)
	}
	if cfg.Labels.Heading != "Groceries" {
		t.Errorf("Heading: got %q", cfg.Labels.Heading)
	}
	if cfg.Labels.Add != "+" {
		t.Errorf("unset label should keep default, got %q", cfg.Labels.Add)
	}
	if len(cfg.Tasks) != 1 || cfg.Tasks[0].Text != "eggs" || !cfg.Tasks[0].Done {
		t.Errorf("Tasks: got %+v", cfg.Tasks)
	}
	if cfg.Serve.Addr != ":9090" || cfg.Serve.WebDir != DefaultWebDir {
		t.Errorf("Serve: got %+v", cfg.Serve)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load(""); err != nil {
		t.Errorf("missing default file should not fail: %v", err)
	}
	if _, err := Load("nope.toml"); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestLoadDefaultFileFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DefaultFile, `theme = "mono"`)
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	p := writeFile(t, t.TempDir(), "todo.toml", `colour = "red"`)
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("Load() error = %v, want unknown key colour", err)
	}
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	p := writeFile(t, t.TempDir(), "todo.toml", `theme = `)
	if _, err := Load(p); err == nil {
		t.Error("Load() should fail on invalid toml")
	}
}

func TestEnvOverrides(t *testing.T) {
	p := writeFile(t, t.TempDir(), "todo.toml", `theme = "neon"`)
	t.Setenv("TODO_THEME", "mono")
	t.Setenv("TODO_LOG_LEVEL", "error")
	t.Setenv("TODO_LOG_FORMAT", "json")
	t.Setenv("TODO_LOG_FILE", "/tmp/todo.log")
	t.Setenv("TODO_SEED_FILE", "seed.json")
	t.Setenv("TODO_ADDR", ":1234")
	t.Setenv("TODO_WEB_DIR", "dist")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme: got %q, want mono", cfg.Theme)
	}
	if cfg.LogLevel != "error" || cfg.LogFormat != "json" || cfg.LogFile != "/tmp/todo.log" {
		t.Errorf("logging: got %q %q %q", cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	}
	if cfg.SeedFile != "seed.json" {
		t.Errorf("SeedFile: got %q", cfg.SeedFile)
	}
	if cfg.Serve.Addr != ":1234" || cfg.Serve.WebDir != "dist" {
		t.Errorf("Serve: got %+v", cfg.Serve)
	}
}

func TestLoadTasks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []model.Task
	}{
		{
			name: "partial entries do not inherit defaults",
			body: "[[tasks]]\ndone = true\n\n[[tasks]]\ntext = \"b\"\n",
			want: []model.Task{{Done: true}, {Text: "b"}},
		},
		{
			name: "no tasks keeps defaults",
			body: `theme = "neon"`,
			want: model.DefaultTasks(),
		},
		{
			name: "fewer tasks than defaults",
			body: "[[tasks]]\ntext = \"only\"\n",
			want: []model.Task{{Text: "only"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeFile(t, t.TempDir(), "todo.toml", tt.body)
			cfg, err := Load(p)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(cfg.Tasks) != len(tt.want) {
				t.Fatalf("Tasks = %+v, want %+v", cfg.Tasks, tt.want)
			}
			for i := range tt.want {
				if cfg.Tasks[i] != tt.want[i] {
					t.Errorf("Tasks[%d] = %+v, want %+v", i, cfg.Tasks[i], tt.want[i])
				}
			}
		})
	}
}
