package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/logger"
	"glimpse/internal/preview"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		previewWidth := m.getSafeWidth() - m.getTreeWidth() - 3
		if previewWidth < 20 {
			previewWidth = 20
		}
		m.viewport.Width = previewWidth
		m.viewport.Height = m.getContentHeight()
		m.clampTreeOffset()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			m.tree.CursorUp()
			m.clampTreeOffset()

		case key.Matches(msg, keys.Down):
			m.tree.CursorDown()
			m.clampTreeOffset()

		case key.Matches(msg, keys.Top):
			m.tree.CursorTop()
			m.clampTreeOffset()

		case key.Matches(msg, keys.Bottom):
			m.tree.CursorBottom()
			m.clampTreeOffset()

		case key.Matches(msg, keys.Open):
			m.activateSelection()

		case key.Matches(msg, keys.Collapse):
			m.tree.Collapse()
			m.clampTreeOffset()

		case key.Matches(msg, keys.ToggleHidden):
			if err := m.tree.ToggleHidden(); err != nil {
				logger.Warn("toggle hidden failed: %v", err)
				m.setStatus(fmt.Sprintf("Cannot reload tree: %v", err))
			} else if m.tree.ShowHidden() {
				m.setStatus("Showing hidden files")
			} else {
				m.setStatus("Hiding hidden files")
			}
			m.clampTreeOffset()

		case key.Matches(msg, keys.CopyPath):
			if n := m.tree.Selected(); n != nil {
				m.copyPath(n.Path)
			}

		case key.Matches(msg, keys.OpenExternal):
			if n := m.tree.Selected(); n != nil && !n.IsDir {
				m.setStatus(fmt.Sprintf("Opening %s", filepath.Base(n.Path)))
				return m, openExternally(n.Path)
			}

		case key.Matches(msg, keys.ScrollDown):
			m.viewport.HalfViewDown()

		case key.Matches(msg, keys.ScrollUp):
			m.viewport.HalfViewUp()
		}
	}

	return m, nil
}

// activateSelection handles one selection event: directories toggle,
// files are previewed synchronously before the next event is processed.
func (m *model) activateSelection() {
	path, isFile, err := m.tree.Activate()
	if err != nil {
		logger.Warn("cannot expand directory: %v", err)
		m.setStatus(fmt.Sprintf("Cannot open: %v", err))
		return
	}
	if !isFile {
		m.clampTreeOffset()
		return
	}
	m.previewFile(path)
}

// previewFile runs one preview transition and syncs the viewport. Only
// the text-bearing modes jump back to the top; image, label, and error
// views leave the viewport offset alone.
func (m *model) previewFile(path string) {
	m.state = m.pane.Select(path)
	m.viewport.SetContent(m.state.Content)
	if m.state.Kind == preview.KindCode || m.state.Kind == preview.KindMarkdown {
		m.viewport.GotoTop()
	}

	if m.state.Kind == preview.KindError {
		logger.Error("preview failed for %s", path)
		m.setStatus(fmt.Sprintf("Preview failed: %s", filepath.Base(path)))
		return
	}
	m.setStatus(fmt.Sprintf("Previewing %s", filepath.Base(path)))
}
