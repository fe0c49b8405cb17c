// Package config loads todo.toml and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/todoweb/internal/model"
	"github.com/idilsaglam/todoweb/internal/todo"
)

// Default values.
const (
	DefaultFile      = "todo.toml"
	DefaultTheme     = "classic"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAddr      = "127.0.0.1:8080"
	DefaultWebDir    = "web"
)

// Config holds the full configuration.
type Config struct {
	Labels LabelsConfig `toml:"labels"`

	// Tasks seed the list. SeedFile, when set, replaces them.
	Tasks    []model.Task `toml:"tasks"`
	SeedFile string       `toml:"seed_file"`

	Theme string `toml:"theme"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogFile   string `toml:"log_file"`

	Serve ServeConfig `toml:"serve"`
}

// LabelsConfig overrides the widget's visible strings.
type LabelsConfig struct {
	Heading     string `toml:"heading"`
	Placeholder string `toml:"placeholder"`
	Add         string `toml:"add"`
	Delete      string `toml:"delete"`
}

// ServeConfig configures the asset server.
type ServeConfig struct {
	Addr   string `toml:"addr"`
	WebDir string `toml:"web_dir"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	l := todo.DefaultLabels()
	return &Config{
		Labels: LabelsConfig{
			Heading:     l.Heading,
			Placeholder: l.Placeholder,
			Add:         l.Add,
			Delete:      l.Delete,
		},
		Tasks:     model.DefaultTasks(),
		Theme:     DefaultTheme,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Serve: ServeConfig{
			Addr:   DefaultAddr,
			WebDir: DefaultWebDir,
		},
	}
}

// Load applies defaults, then the file at path, then the environment.
// An empty path reads DefaultFile if it exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	loadFromEnv(cfg)
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	// The decoder fills existing slice elements in place, so tasks from the
	// file must not land on top of the defaults.
	defaults := cfg.Tasks
	cfg.Tasks = nil
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		cfg.Tasks = defaults
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if !md.IsDefined("tasks") {
		cfg.Tasks = defaults
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}
