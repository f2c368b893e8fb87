package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func testBitmap(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestRasterizeWidth(t *testing.T) {
	out := Rasterize(testBitmap(160, 90), 80, true)

	lines := strings.Split(out, "\n")
	first := stripANSI(lines[0])
	if got := utf8.RuneCountInString(first); got != 80 {
		t.Errorf("expected 80 cells in first row, got %d", got)
	}
}

func TestRasterizeRowCount(t *testing.T) {
	// 160x90 at width 80: scale 2, height 45, bumped to 46, so 23 rows
	out := Rasterize(testBitmap(160, 90), 80, true)
	if rows := len(strings.Split(out, "\n")); rows != 23 {
		t.Errorf("expected 23 rows, got %d", rows)
	}

	// Even height needs no bump: 160x80 at width 80 scales to 40 source
	// rows, 20 cell rows
	out = Rasterize(testBitmap(160, 80), 80, true)
	if rows := len(strings.Split(out, "\n")); rows != 20 {
		t.Errorf("expected 20 rows, got %d", rows)
	}
}

func TestRasterizeHalfBlockGlyphs(t *testing.T) {
	out := stripANSI(Rasterize(testBitmap(8, 8), 4, true))
	for _, r := range out {
		if r != '▀' && r != '\n' {
			t.Fatalf("unexpected glyph %q in unicode output", r)
		}
	}
}

func TestRasterizeNonUnicode(t *testing.T) {
	out := stripANSI(Rasterize(testBitmap(8, 8), 4, false))
	for _, r := range out {
		if r != ' ' && r != '\n' {
			t.Fatalf("unexpected glyph %q in non-unicode output", r)
		}
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	if out := Rasterize(image.NewRGBA(image.Rect(0, 0, 0, 0)), 80, true); out != "" {
		t.Errorf("expected empty output for empty bitmap, got %d bytes", len(out))
	}
}

func TestImageDecodesPNG(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "photo.png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, testBitmap(100, 60)); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	os.WriteFile(path, buf.Bytes(), 0644)

	out, err := Image(path, 80)
	if err != nil {
		t.Fatalf("Image failed: %v", err)
	}
	first := stripANSI(strings.Split(out, "\n")[0])
	if got := utf8.RuneCountInString(first); got != 80 {
		t.Errorf("expected 80 columns, got %d", got)
	}
}

func TestImageDecodeFailure(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "fake.png")
	os.WriteFile(path, []byte("this is not image data"), 0644)

	_, err := Image(path, 80)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestImageMissingFile(t *testing.T) {
	_, err := Image(filepath.Join(t.TempDir(), "gone.png"), 80)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
