package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image decodes the file at path and returns it rendered as a half-block
// color grid destWidth character cells wide.
func Image(path string, destWidth int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return Rasterize(img, destWidth, true), nil
}

// Rasterize scales img down to destWidth columns and encodes two source
// rows per character cell: the top pixel becomes the foreground of an
// upper-half-block glyph, the bottom pixel its background. With unicode
// off each cell is a background-colored space covering a single row.
//
// The scaled height is bumped to the next even number so every row pair
// maps cleanly onto one character row.
func Rasterize(img image.Image, destWidth int, unicode bool) string {
	bounds := img.Bounds()
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()
	if srcWidth <= 0 || srcHeight <= 0 || destWidth <= 0 {
		return ""
	}

	scale := float64(srcWidth) / float64(destWidth)
	destHeight := int(float64(srcHeight) / scale)
	if destHeight%2 != 0 {
		destHeight++
	}
	if destHeight < 2 {
		destHeight = 2
	}

	scaled := resize.Resize(uint(destWidth), uint(destHeight), img, resize.NearestNeighbor)

	var sb strings.Builder
	for y := 0; y < destHeight; y += 2 {
		for x := 0; x < destWidth; x++ {
			if unicode {
				cell := lipgloss.NewStyle().
					Foreground(hexColor(scaled.At(x, y))).
					Background(hexColor(scaled.At(x, y+1)))
				sb.WriteString(cell.Render("▀"))
			} else {
				cell := lipgloss.NewStyle().Background(hexColor(scaled.At(x, y)))
				sb.WriteString(cell.Render(" "))
			}
		}
		if y+2 < destHeight {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
