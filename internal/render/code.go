package render

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const codeTheme = "github-dark"

var (
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	guideStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Code reads the file at path and returns it syntax-highlighted with a
// line-number gutter and indent guides. Long lines are left unwrapped.
func Code(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	text := string(data)
	if !utf8.ValidString(text) {
		return "", fmt.Errorf("%w: %s: not valid utf-8 text", ErrDecode, path)
	}

	highlighted, err := highlight(path, text)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, path, err)
	}

	return addGutter(highlighted, text), nil
}

// highlight picks a lexer by path, falling back to content analysis and
// then the catch-all lexer, and formats for a truecolor terminal.
func highlight(path, text string) (string, error) {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(codeTheme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// addGutter prefixes every highlighted line with a right-aligned line
// number and marks each 4-column indent level with a faint guide. The
// indent width is measured on the plain source so ANSI sequences in the
// highlighted text never confuse it.
func addGutter(highlighted, plain string) string {
	lines := strings.Split(strings.TrimSuffix(highlighted, "\n"), "\n")
	plainLines := strings.Split(strings.TrimSuffix(plain, "\n"), "\n")
	numWidth := len(fmt.Sprintf("%d", len(lines)))

	var sb strings.Builder
	for i, line := range lines {
		num := gutterStyle.Render(fmt.Sprintf("%*d │ ", numWidth, i+1))
		sb.WriteString(num)

		if i < len(plainLines) {
			line = indentGuides(line, leadingSpaces(plainLines[i]))
		}
		sb.WriteString(line)
		if i < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// indentGuides rewrites the first indent space characters of a highlighted
// line, putting a guide mark on every 4th column. Escape sequences are
// copied through untouched.
func indentGuides(line string, indent int) string {
	if indent < 4 {
		return line
	}

	var sb strings.Builder
	col := 0
	i := 0
	for i < len(line) && col < indent {
		// Copy a whole ANSI sequence without counting it as a column
		if line[i] == 0x1b {
			j := i
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++
			}
			sb.WriteString(line[i:j])
			i = j
			continue
		}
		if line[i] == ' ' {
			if col%4 == 0 {
				sb.WriteString(guideStyle.Render("┆"))
			} else {
				sb.WriteByte(' ')
			}
			col++
			i++
			continue
		}
		// Plain text before the indent ran out: give up on this line
		return line
	}
	sb.WriteString(line[i:])
	return sb.String()
}
