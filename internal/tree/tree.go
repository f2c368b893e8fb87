// Package tree is the directory-tree side of the browser: an expandable,
// lazily-loaded tree of filesystem nodes with a cursor. Activating a file
// row yields the absolute path the preview pane should render.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"glimpse/internal/utils"
)

// Node is one filesystem entry. Directory children are loaded on first
// expansion and kept until the tree is rebuilt.
type Node struct {
	Name     string
	Path     string
	IsDir    bool
	Size     int64
	Expanded bool
	loaded   bool
	Children []*Node
}

// Row is a visible line: a node plus its indent depth.
type Row struct {
	Node  *Node
	Depth int
}

// Model holds the tree state for one root directory.
type Model struct {
	root       *Node
	rows       []Row
	cursor     int
	showHidden bool
	focused    bool
}

// New builds a tree rooted at path with the root level expanded.
func New(path string) (*Model, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	root := &Node{
		Name:  filepath.Base(abs),
		Path:  abs,
		IsDir: info.IsDir(),
	}

	m := &Model{root: root}
	if root.IsDir {
		if err := m.load(root); err != nil {
			return nil, err
		}
		root.Expanded = true
	}
	m.flatten()
	return m, nil
}

// load reads a directory's children, filtered and sorted dirs-first.
func (m *Model) load(n *Node) error {
	entries, err := os.ReadDir(n.Path)
	if err != nil {
		return err
	}

	n.Children = n.Children[:0]
	for _, entry := range entries {
		name := entry.Name()
		if !m.showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if utils.ShouldIgnore(name) {
			continue
		}

		childPath := filepath.Join(n.Path, name)
		info, err := entry.Info()
		if err != nil {
			continue
		}

		n.Children = append(n.Children, &Node{
			Name:  name,
			Path:  childPath,
			IsDir: entry.IsDir(),
			Size:  info.Size(),
		})
	}

	sort.Slice(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	n.loaded = true
	return nil
}

// flatten rebuilds the visible row list from expanded nodes.
func (m *Model) flatten() {
	m.rows = m.rows[:0]
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		for _, child := range n.Children {
			m.rows = append(m.rows, Row{Node: child, Depth: depth})
			if child.IsDir && child.Expanded {
				walk(child, depth+1)
			}
		}
	}
	if m.root != nil && m.root.Expanded {
		walk(m.root, 0)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Focus marks the tree as the active pane.
func (m *Model) Focus() { m.focused = true }

// Blur removes focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the tree is the active pane.
func (m *Model) Focused() bool { return m.focused }

// Root returns the tree's root path.
func (m *Model) Root() string { return m.root.Path }

// Rows returns the currently visible rows, top to bottom.
func (m *Model) Rows() []Row { return m.rows }

// Cursor returns the index of the highlighted row.
func (m *Model) Cursor() int { return m.cursor }

// Selected returns the highlighted node, or nil for an empty tree.
func (m *Model) Selected() *Node {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.cursor].Node
}

// CursorUp moves the highlight one row up.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// CursorDown moves the highlight one row down.
func (m *Model) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
	}
}

// CursorTop and CursorBottom jump to the ends of the list.
func (m *Model) CursorTop() { m.cursor = 0 }

func (m *Model) CursorBottom() {
	if len(m.rows) > 0 {
		m.cursor = len(m.rows) - 1
	}
}

// Activate acts on the highlighted row. Directories toggle expansion and
// return ok=false; files return their absolute path with ok=true.
func (m *Model) Activate() (path string, ok bool, err error) {
	n := m.Selected()
	if n == nil {
		return "", false, nil
	}

	if !n.IsDir {
		return n.Path, true, nil
	}

	if n.Expanded {
		n.Expanded = false
	} else {
		if !n.loaded {
			if err := m.load(n); err != nil {
				return "", false, err
			}
		}
		n.Expanded = true
	}
	m.flatten()
	return "", false, nil
}

// Collapse folds the highlighted directory, or moves to the parent row
// when the highlight is not on an expanded directory.
func (m *Model) Collapse() {
	n := m.Selected()
	if n == nil {
		return
	}
	if n.IsDir && n.Expanded {
		n.Expanded = false
		m.flatten()
		return
	}

	parent := filepath.Dir(n.Path)
	for i, row := range m.rows {
		if row.Node.Path == parent {
			m.cursor = i
			return
		}
	}
}

// ShowHidden reports the hidden-file filter state.
func (m *Model) ShowHidden() bool { return m.showHidden }

// ToggleHidden flips the hidden-file filter and rebuilds the tree,
// keeping expansion state for directories that still exist.
func (m *Model) ToggleHidden() error {
	m.showHidden = !m.showHidden

	expanded := map[string]bool{m.root.Path: m.root.Expanded}
	var collect func(n *Node)
	collect = func(n *Node) {
		for _, child := range n.Children {
			if child.IsDir && child.Expanded {
				expanded[child.Path] = true
			}
			collect(child)
		}
	}
	collect(m.root)

	selectedPath := ""
	if n := m.Selected(); n != nil {
		selectedPath = n.Path
	}

	if err := m.reload(m.root, expanded); err != nil {
		return err
	}
	m.flatten()

	if selectedPath != "" {
		for i, row := range m.rows {
			if row.Node.Path == selectedPath {
				m.cursor = i
				break
			}
		}
	}
	return nil
}

// reload re-reads a directory and re-expands children that were open.
func (m *Model) reload(n *Node, expanded map[string]bool) error {
	if !n.IsDir || !expanded[n.Path] {
		return nil
	}
	if err := m.load(n); err != nil {
		return err
	}
	n.Expanded = true
	for _, child := range n.Children {
		if expanded[child.Path] {
			if err := m.reload(child, expanded); err != nil {
				continue
			}
		}
	}
	return nil
}
