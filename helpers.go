package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"glimpse/internal/logger"
)

// Helper functions

// copyPath puts a path on the system clipboard.
func (m *model) copyPath(path string) {
	err := clipboard.WriteAll(path)
	if err == nil {
		m.setStatus(fmt.Sprintf("Copied: %s", path))
	} else {
		logger.Warn("clipboard write failed: %v", err)
		m.setStatus(fmt.Sprintf("Failed to copy: %v", err))
	}
}

// openExternally hands a file to the system default opener. Runs as a
// command so a slow opener never blocks the event loop.
func openExternally(path string) tea.Cmd {
	return func() tea.Msg {
		if err := open.Run(path); err != nil {
			logger.Warn("external open failed for %s: %v", path, err)
		}
		return nil
	}
}
