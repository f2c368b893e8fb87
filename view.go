package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"glimpse/internal/preview"
	"glimpse/internal/utils"
)

var (
	clrAccent   = lipgloss.Color("105") // violet – selected row
	clrAccentFg = lipgloss.Color("231") // near-white on accent
	clrDir      = lipgloss.Color("75")  // sky blue – directories
	clrMuted    = lipgloss.Color("240") // grey – chrome
	clrDim      = lipgloss.Color("238") // bar backgrounds
	clrTitle    = lipgloss.Color("147") // periwinkle – titles
	clrStatus   = lipgloss.Color("189") // lavender – status text
	clrError    = lipgloss.Color("196") // red – error marker
	clrImage    = lipgloss.Color("215") // amber – image mode

	titleStyle    = lipgloss.NewStyle().Foreground(clrTitle).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(clrMuted)
	statusStyle   = lipgloss.NewStyle().Foreground(clrStatus)
	errorStyle    = lipgloss.NewStyle().Foreground(clrError).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(clrAccentFg).Background(clrAccent).Bold(true)
	dirStyle      = lipgloss.NewStyle().Foreground(clrDir).Bold(true)
	imageStyle    = lipgloss.NewStyle().Foreground(clrImage)
	barStyle      = lipgloss.NewStyle().Background(clrDim).PaddingLeft(1)
)

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render("loading…")
	}

	width := m.getSafeWidth()
	bodyH := m.getContentHeight()
	treeW := m.getTreeWidth()

	header := m.renderHeader(width)
	divider := mutedStyle.Render(strings.Repeat("─", width))
	treePane := m.renderTree(treeW, bodyH)
	sep := m.renderSeparator(bodyH)
	previewPane := lipgloss.NewStyle().
		Width(m.viewport.Width).
		Height(bodyH).
		Render(m.viewport.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, treePane, sep, previewPane)
	footer := m.renderFooter(width)

	return header + "\n" + divider + "\n" + body + "\n" + footer
}

// renderHeader draws the title bar with the pane subtitle on the right.
func (m model) renderHeader(width int) string {
	title := titleStyle.Render("glimpse")

	var subtitle string
	switch {
	case m.state.Kind == preview.KindError:
		subtitle = errorStyle.Render(m.state.Subtitle + " ⚠")
	case m.state.Kind == preview.KindEmpty:
		subtitle = mutedStyle.Render(m.tree.Root())
	default:
		subtitle = statusStyle.Render(m.state.Subtitle)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(subtitle) - 2
	if gap < 1 {
		gap = 1
	}
	return barStyle.Width(width).Render(title + strings.Repeat(" ", gap) + subtitle)
}

// treeSizeColumn is the width reserved for the right-aligned size column.
const treeSizeColumn = 9

// renderTree draws the visible window of tree rows: icon and name on the
// left, a human-readable size column on the right for files.
func (m model) renderTree(w, h int) string {
	rows := m.tree.Rows()
	lines := make([]string, 0, h)

	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render("  (empty directory)"))
	}

	nameW := w - treeSizeColumn - 1
	if nameW < 8 {
		nameW = 8
	}

	end := m.treeOffset + h
	if end > len(rows) {
		end = len(rows)
	}
	for i := m.treeOffset; i < end; i++ {
		row := rows[i]
		n := row.Node

		indent := strings.Repeat("  ", row.Depth)
		var label string
		if n.IsDir {
			arrow := "▸ "
			if n.Expanded {
				arrow = "▾ "
			}
			label = indent + arrow + n.Name + "/"
		} else {
			label = indent + utils.GetFileIcon(n.Name) + " " + n.Name
		}
		label = trimVisual(label, nameW)

		sizeField := strings.Repeat(" ", treeSizeColumn)
		if !n.IsDir {
			sizeField = fmt.Sprintf("%*s", treeSizeColumn, utils.FormatFileSize(n.Size))
		}

		if i == m.tree.Cursor() {
			pad := w - treeSizeColumn - lipgloss.Width(label)
			if pad < 0 {
				pad = 0
			}
			lines = append(lines, selectedStyle.Render(label+strings.Repeat(" ", pad)+sizeField))
			continue
		}

		pad := nameW - lipgloss.Width(label) + 1
		if pad < 1 {
			pad = 1
		}
		var namePart string
		switch {
		case n.IsDir:
			namePart = dirStyle.Render(label)
		case utils.IsImageFile(n.Name):
			namePart = imageStyle.Render(label)
		default:
			namePart = label
		}
		lines = append(lines, namePart+strings.Repeat(" ", pad)+mutedStyle.Render(sizeField))
	}

	return lipgloss.NewStyle().Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

// renderSeparator tints the pane divider by the active style class, the
// terminal stand-in for the original's code-view/image-view CSS classes.
func (m model) renderSeparator(h int) string {
	color := clrMuted
	switch m.state.Style {
	case preview.StyleImage:
		color = clrImage
	case preview.StyleCode:
		color = clrTitle
	}

	line := lipgloss.NewStyle().Foreground(color).Render("│")
	parts := make([]string, h)
	for i := range parts {
		parts[i] = line
	}
	return strings.Join(parts, "\n")
}

// renderFooter draws the status line and the key hint line.
func (m model) renderFooter(width int) string {
	status := m.statusMsg
	if !m.statusExpiry.IsZero() && time.Now().After(m.statusExpiry) {
		status = ""
	}
	if status == "" {
		status = "ready"
	}
	statusLine := barStyle.Width(width).Render(statusStyle.Render("◆ " + trimVisual(status, width-3)))

	keyStyle := lipgloss.NewStyle().Foreground(clrAccent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(clrMuted)

	bindings := []struct{ key, desc string }{
		{"j/k", "move"},
		{"enter", "open"},
		{"h", "collapse"},
		{"J/K", "scroll"},
		{".", "hidden"},
		{"y", "copy path"},
		{"o", "open ext"},
		{"q", "quit"},
	}

	var parts []string
	used := 0
	sepW := lipgloss.Width(descStyle.Render("  ·  "))
	for i, b := range bindings {
		seg := keyStyle.Render(b.key) + descStyle.Render(" "+b.desc)
		segW := lipgloss.Width(seg)
		extra := 0
		if i > 0 {
			extra = sepW
		}
		if used+extra+segW > width-2 {
			break
		}
		if i > 0 {
			parts = append(parts, descStyle.Render("  ·  "))
			used += sepW
		}
		parts = append(parts, seg)
		used += segW
	}
	keysLine := barStyle.Width(width).Render(strings.Join(parts, ""))

	return statusLine + "\n" + keysLine
}

// trimVisual truncates s to at most n visible terminal columns, appending
// "…" if truncated.
func trimVisual(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	var sb strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > n-1 {
			sb.WriteRune('…')
			break
		}
		sb.WriteRune(r)
		used += rw
	}
	return sb.String()
}
