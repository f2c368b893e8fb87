package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// checkboxReplacer rewrites the compact task-list shorthand into real
// ballot-box glyphs before the markdown renderer sees the text.
var checkboxReplacer = strings.NewReplacer(
	"-[ ]", "- ☐",
	"-[x]", "- ☒",
)

// renderMarkdown is a seam for tests; production always goes to glamour.
var renderMarkdown = func(text string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
		glamour.WithEmoji(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

// Markdown reads the file at path and returns it rendered for the
// terminal at the given wrap width.
func Markdown(path string, width int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	text := PrepareMarkdown(string(data))
	out, err := renderMarkdown(text, width)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, path, err)
	}
	return out, nil
}

// PrepareMarkdown applies the literal checkbox substitutions.
func PrepareMarkdown(text string) string {
	return checkboxReplacer.Replace(text)
}
