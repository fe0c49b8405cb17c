// Package web holds the page that loads the WASM build.
package web

import "embed"

// Assets contains index.html and style.css. The build outputs main.wasm and
// wasm_exec.js are served from disk.
//
//go:embed index.html style.css
var Assets embed.FS
