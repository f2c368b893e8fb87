package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrepareMarkdownCheckboxes(t *testing.T) {
	in := "tasks:\n-[ ] write tests\n-[x] write code\n"
	out := PrepareMarkdown(in)

	if strings.Contains(out, "-[ ]") || strings.Contains(out, "-[x]") {
		t.Errorf("shorthand survived substitution: %q", out)
	}
	if !strings.Contains(out, "- ☐ write tests") {
		t.Errorf("unchecked box not substituted: %q", out)
	}
	if !strings.Contains(out, "- ☒ write code") {
		t.Errorf("checked box not substituted: %q", out)
	}
}

func TestMarkdownSubstitutesBeforeRendering(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "todo.md")
	os.WriteFile(path, []byte("# Todo\n\n-[ ] one\n-[x] two\n"), 0644)

	// Capture exactly what the backend receives
	var captured string
	orig := renderMarkdown
	renderMarkdown = func(text string, width int) (string, error) {
		captured = text
		return "rendered", nil
	}
	defer func() { renderMarkdown = orig }()

	out, err := Markdown(path, 80)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if out != "rendered" {
		t.Errorf("expected stub output, got %q", out)
	}
	if !strings.Contains(captured, "- ☐ one") || !strings.Contains(captured, "- ☒ two") {
		t.Errorf("backend received unsubstituted text: %q", captured)
	}
}

func TestMarkdownRendersRealContent(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "doc.md")
	os.WriteFile(path, []byte("# Heading\n\nsome paragraph text\n"), 0644)

	out, err := Markdown(path, 60)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(out, "Heading") {
		t.Errorf("rendered output lost the heading: %q", out)
	}
}

func TestMarkdownMissingFile(t *testing.T) {
	_, err := Markdown(filepath.Join(t.TempDir(), "gone.md"), 80)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
