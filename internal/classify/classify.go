// Package classify decides how a file should be previewed: it sniffs the
// file's real MIME type from its content and maps (MIME type, extension)
// onto one of the four render modes.
package classify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnreadablePath marks paths that cannot be opened or sniffed.
var ErrUnreadablePath = errors.New("unreadable path")

// Mode is the chosen preview strategy for a file.
type Mode int

const (
	ModeCode Mode = iota
	ModeMarkdown
	ModeImage
	ModeRawLabel
)

func (m Mode) String() string {
	switch m {
	case ModeCode:
		return "code"
	case ModeMarkdown:
		return "markdown"
	case ModeImage:
		return "image"
	case ModeRawLabel:
		return "raw-label"
	}
	return "unknown"
}

// sniffLimit is how much of an ambiguous file the buffer sniff samples.
const sniffLimit = 2048

// Path sniffs the MIME type of the file at path from its content and
// returns it as a bare "type/subtype" string.
//
// Files that sniff as text/plain but carry no extension are ambiguous:
// for those the first 2KB are re-sniffed from a buffer and that result
// wins, so a shebang script or extension-less XML ends up with its real
// type rather than the generic label.
func Path(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadablePath, path, err)
	}
	mime := bare(mt.String())

	if mime == "text/plain" {
		if _, hasExt := Ext(path); !hasExt {
			buffered, err := sniffBuffer(path)
			if err != nil {
				return "", err
			}
			mime = buffered
		}
	}

	return mime, nil
}

// sniffBuffer re-classifies a file from its leading bytes.
func sniffBuffer(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadablePath, path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadablePath, path, err)
	}

	return bare(mimetype.Detect(buf[:n]).String()), nil
}

// bare strips MIME parameters: "text/plain; charset=utf-8" -> "text/plain".
func bare(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

// Ext returns the extension used for mode selection: the first
// dot-delimited segment after the basename's first dot. The second
// return reports whether the name has a dot at all -- "file." has an
// (empty) extension, "README" has none. Note "archive.tar.gz" yields
// "tar", not "gz": the first segment is kept deliberately, existing
// behavior depends on it.
func Ext(path string) (string, bool) {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) < 2 {
		return "", false
	}
	return parts[1], true
}

// ModeFor maps a sniffed MIME type and an extension to a render mode.
// Pure function; the precedence below is the contract.
func ModeFor(mime, ext string, hasExt bool) Mode {
	topLevel := mime
	if i := strings.IndexByte(mime, '/'); i >= 0 {
		topLevel = mime[:i]
	}

	switch topLevel {
	case "application":
		return ModeCode
	case "text":
		if mime != "text/plain" {
			return ModeCode
		}
		switch {
		case !hasExt:
			// No extension to disambiguate: show the label itself.
			return ModeRawLabel
		case ext == "md":
			return ModeMarkdown
		default:
			return ModeCode
		}
	case "image":
		return ModeImage
	default:
		return ModeRawLabel
	}
}
