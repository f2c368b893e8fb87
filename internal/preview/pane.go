// Package preview holds the pane state machine: each file selection is
// classified, dispatched to a renderer, and folded into a single State
// value. The package has no UI dependencies; the renderers and the
// classifier are plain functions injected at construction, which is what
// keeps every transition unit-testable.
package preview

import (
	"fmt"

	"glimpse/internal/classify"
)

// Kind identifies what the pane is currently showing.
type Kind int

const (
	KindEmpty Kind = iota
	KindCode
	KindMarkdown
	KindImage
	KindRawLabel
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCode:
		return "code"
	case KindMarkdown:
		return "markdown"
	case KindImage:
		return "image"
	case KindRawLabel:
		return "raw-label"
	case KindError:
		return "error"
	}
	return "unknown"
}

// StyleClass is the visual treatment the view layer should apply.
type StyleClass int

const (
	StyleNone StyleClass = iota
	StyleCode
	StyleImage
)

// SubtitleMimeType is shown instead of a path when the pane displays a
// bare MIME label.
const SubtitleMimeType = "Mime Type"

// SubtitleError is the warning marker shown when a preview fails.
const SubtitleError = "ERROR"

// State is the pane's entire visible state. Every selection replaces the
// content-bearing fields wholesale; there is no partial update.
type State struct {
	Kind     Kind
	Content  string
	Style    StyleClass
	Subtitle string
	Scroll   int
}

// Renderers are the pluggable backends, one per render mode that does
// I/O. Each returns displayable text or an error; errors never escape the
// pane.
type Renderers struct {
	Code     func(path string) (string, error)
	Markdown func(path string) (string, error)
	Image    func(path string) (string, error)
}

// Pane owns the single preview surface.
type Pane struct {
	classifyPath func(path string) (string, error)
	render       Renderers
	state        State
}

// New returns a pane in the empty state using the given renderers and the
// content-sniffing classifier.
func New(r Renderers) *Pane {
	return &Pane{
		classifyPath: classify.Path,
		render:       r,
		state:        State{Kind: KindEmpty},
	}
}

// NewWithClassifier is New with the MIME classifier swapped out.
func NewWithClassifier(r Renderers, classifyPath func(string) (string, error)) *Pane {
	p := New(r)
	p.classifyPath = classifyPath
	return p
}

// State returns the current pane state.
func (p *Pane) State() State {
	return p.state
}

// Select handles one selection event: classify the path, pick a mode,
// render, and replace the pane state. Any failure lands in the error
// state; Select never returns an error and never panics the app.
func (p *Pane) Select(path string) State {
	mime, err := p.classifyPath(path)
	if err != nil {
		return p.fail(path, err)
	}

	ext, hasExt := classify.Ext(path)
	mode := classify.ModeFor(mime, ext, hasExt)
	switch mode {
	case classify.ModeCode:
		out, err := p.render.Code(path)
		if err != nil {
			return p.fail(path, err)
		}
		p.state = State{Kind: KindCode, Content: out, Style: StyleCode, Subtitle: path}

	case classify.ModeMarkdown:
		out, err := p.render.Markdown(path)
		if err != nil {
			return p.fail(path, err)
		}
		p.state = State{Kind: KindMarkdown, Content: out, Style: StyleCode, Subtitle: path}

	case classify.ModeImage:
		out, err := p.render.Image(path)
		if err != nil {
			return p.fail(path, err)
		}
		p.state = State{Kind: KindImage, Content: out, Style: StyleImage, Subtitle: path}

	case classify.ModeRawLabel:
		// No I/O: the sniffed MIME string is the content.
		p.state = State{Kind: KindRawLabel, Content: mime, Style: StyleNone, Subtitle: SubtitleMimeType}
	}

	return p.state
}

// fail replaces the pane with a diagnostic. The process keeps running;
// only the pane surface reflects the failure.
func (p *Pane) fail(path string, err error) State {
	p.state = State{
		Kind:     KindError,
		Content:  diagnostic(path, err),
		Style:    StyleNone,
		Subtitle: SubtitleError,
	}
	return p.state
}

func diagnostic(path string, err error) string {
	return fmt.Sprintf("preview failed\n\n  path:  %s\n  error: %v", path, err)
}
