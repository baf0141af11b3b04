// Package main provides the entry point for the sourcemode TUI.
//
// Sourcemode is a terminal structured-document editor with a
// toggleable source editing mode: the document's regions can be
// flipped between their structured card view and a flat source text
// view, with editor commands held disabled while the source view is
// live.
//
// Usage:
//
//	sourcemode [options]
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/sourcemode/internal/app"
	"github.com/riordanpawley/sourcemode/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
