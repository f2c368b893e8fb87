package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		// Logging is best-effort; the browser still works without it.
		logger.Disable()
	}
	defer logger.Close()

	rootPath := "."
	if len(os.Args) > 1 {
		rootPath = os.Args[1]
	}

	m, err := initialModel(rootPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "glimpse: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting at %s", m.tree.Root())

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed: %v", err)
		fmt.Fprintf(os.Stderr, "glimpse: %v\n", err)
		os.Exit(1)
	}
}
