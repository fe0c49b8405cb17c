//go:build js && wasm

// Command todo-wasm mounts the todo widget into the page it is loaded from.
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./cmd/todo-wasm
package main

import (
	"os"

	"github.com/idilsaglam/todoweb/internal/config"
	"github.com/idilsaglam/todoweb/internal/dom/jsdom"
	"github.com/idilsaglam/todoweb/internal/logging"
	"github.com/idilsaglam/todoweb/internal/todo"
)

func main() {
	cfg := config.Default()

	lo := logging.DefaultOptions()
	lo.Level = logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(os.Stderr, lo)

	doc := jsdom.New()
	doc.OnReady(func() {
		todo.Mount(doc,
			todo.WithTasks(cfg.Tasks),
			todo.WithLabels(todo.Labels{
				Heading:     cfg.Labels.Heading,
				Placeholder: cfg.Labels.Placeholder,
				Add:         cfg.Labels.Add,
				Delete:      cfg.Labels.Delete,
			}),
			todo.WithLogger(logger),
		)
		logger.Info("widget mounted")
	})

	// Listeners run on the JS event loop; main must not return.
	select {}
}
