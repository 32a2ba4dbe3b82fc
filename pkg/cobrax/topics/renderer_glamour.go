package topics

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// DefaultWrapWidth keeps help topics readable on wide terminals
const DefaultWrapWidth = 80

// GlamourRenderer renders markdown topics for the terminal with glamour.
// Other topic formats pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour standard style ("dark", "light", "notty", ...) or
	// "auto" to follow the terminal background.
	Style string
	// Width wraps text at this column; 0 means DefaultWrapWidth.
	Width int

	once     sync.Once
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a markdown renderer that follows the terminal
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) init() {
	width := r.Width
	if width <= 0 {
		width = DefaultWrapWidth
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(r.Style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err == nil {
		r.renderer = renderer
	}
}

// Render converts markdown to styled terminal output. On any failure the
// raw content is returned.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	r.once.Do(r.init)
	if r.renderer == nil {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
