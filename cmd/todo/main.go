package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todoweb/internal/cli"
	"github.com/idilsaglam/todoweb/internal/config"
	"github.com/idilsaglam/todoweb/internal/logging"
	"github.com/idilsaglam/todoweb/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "config file (default todo.toml if present)")
	theme := flag.String("theme", "", "theme: classic, neon or mono")
	groupPending := flag.Bool("group", false, "group ls output by pending/done")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.NewTheme(config.DefaultTheme).Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	lo := logging.DefaultOptions()
	lo.Level = logging.ParseLevel(cfg.LogLevel)
	lo.Formatter = logging.ParseFormatter(cfg.LogFormat)

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Group:  *groupPending,
		Config: cfg,
		Theme:  ui.NewTheme(cfg.Theme),
		Logger: logging.New(os.Stderr, lo),
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
