package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"glimpse/internal/preview"
	"glimpse/internal/render"
	"glimpse/internal/tree"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 60 // Minimum usable width
	minTerminalHeight = 16 // Minimum usable height
	uiOverhead        = 4  // Header (1) + divider (1) + status (1) + keys (1)
)

// Rendering constants
const (
	imageRenderWidth  = 80 // Character cells per image row
	markdownWrapWidth = 80 // Wrap width handed to the markdown renderer
	statusDuration    = 3 * time.Second
)

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	Open         key.Binding
	Collapse     key.Binding
	ToggleHidden key.Binding
	CopyPath     key.Binding
	OpenExternal key.Binding
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "collapse"),
	),
	ToggleHidden: key.NewBinding(
		key.WithKeys("."),
		key.WithHelp(".", "hidden"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	OpenExternal: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open ext"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("J", "pgdown"),
		key.WithHelp("J", "scroll dn"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("K", "pgup"),
		key.WithHelp("K", "scroll up"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type model struct {
	tree         *tree.Model
	pane         *preview.Pane
	state        preview.State
	viewport     viewport.Model
	width        int
	height       int
	ready        bool
	treeOffset   int
	statusMsg    string
	statusExpiry time.Time
}

func initialModel(rootPath string) (model, error) {
	t, err := tree.New(rootPath)
	if err != nil {
		return model{}, err
	}
	t.Focus()

	pane := preview.New(preview.Renderers{
		Code: render.Code,
		Markdown: func(path string) (string, error) {
			return render.Markdown(path, markdownWrapWidth)
		},
		Image: func(path string) (string, error) {
			return render.Image(path, imageRenderWidth)
		},
	})

	return model{
		tree:     t,
		pane:     pane,
		state:    pane.State(),
		viewport: viewport.New(0, 0),
	}, nil
}

// Helper methods for safe dimensions
func (m *model) getSafeWidth() int {
	if m.width < minTerminalWidth {
		return minTerminalWidth
	}
	return m.width
}

func (m *model) getSafeHeight() int {
	if m.height < minTerminalHeight {
		return minTerminalHeight
	}
	return m.height
}

// getContentHeight returns available height for the panes
func (m *model) getContentHeight() int {
	availableHeight := m.getSafeHeight() - uiOverhead
	if availableHeight < 3 {
		availableHeight = 3
	}
	return availableHeight
}

// getTreeWidth returns the left pane width; the preview takes the rest.
func (m *model) getTreeWidth() int {
	w := m.getSafeWidth() / 3
	if w < 24 {
		w = 24
	}
	return w
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(statusDuration)
}

// clampTreeOffset keeps the cursor inside the visible tree window.
func (m *model) clampTreeOffset() {
	visible := m.getContentHeight()
	cursor := m.tree.Cursor()

	if cursor < m.treeOffset {
		m.treeOffset = cursor
	}
	if cursor >= m.treeOffset+visible {
		m.treeOffset = cursor - visible + 1
	}
	if m.treeOffset < 0 {
		m.treeOffset = 0
	}
}
