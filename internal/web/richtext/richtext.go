package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns page body text into HTML. Authors write either Markdown or
// HTML; raw HTML passes through untouched, as it did in the page editor.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
				html.WithHardWraps(),
			),
		),
	}
}

// Render returns "" for blank input.
func (r *Renderer) Render(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("render body text: %w", err)
	}
	return buf.String(), nil
}
