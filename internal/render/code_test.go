package render

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCodeAddsLineNumbers(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "main.go")
	os.WriteFile(path, []byte("package main\n\nfunc main() {\n}\n"), 0644)

	out, err := Code(path)
	if err != nil {
		t.Fatalf("Code failed: %v", err)
	}

	plain := stripANSI(out)
	if !strings.Contains(plain, "1 │") {
		t.Errorf("missing line-number gutter: %q", plain)
	}
	lines := strings.Split(plain, "\n")
	if !strings.Contains(lines[0], "package main") {
		t.Errorf("first line lost its content: %q", lines[0])
	}
}

func TestCodeIndentGuides(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "deep.py")
	os.WriteFile(path, []byte("def f():\n    if True:\n        return 1\n"), 0644)

	out, err := Code(path)
	if err != nil {
		t.Fatalf("Code failed: %v", err)
	}
	if !strings.Contains(stripANSI(out), "┆") {
		t.Error("expected indent guides in indented source")
	}
}

func TestCodeRejectsBinary(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "blob.bin")
	os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x81, 0x92, 0xff}, 0644)

	_, err := Code(path)
	if err == nil {
		t.Fatal("expected error for non-utf8 content")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestCodeMissingFile(t *testing.T) {
	_, err := Code(filepath.Join(t.TempDir(), "gone.go"))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
