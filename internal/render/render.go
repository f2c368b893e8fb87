// Package render turns files into terminal-displayable strings: chroma
// syntax highlighting for code, glamour for markdown, and a half-block
// rasterizer for images.
package render

import "errors"

var (
	// ErrDecode marks content that exists but cannot be parsed as its
	// claimed type: malformed images, binary fed to a text renderer.
	ErrDecode = errors.New("decode failed")

	// ErrRender marks internal failures of a rendering backend.
	ErrRender = errors.New("render failed")
)
