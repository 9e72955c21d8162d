package services

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var entryBodyMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderEntryBody converts an entry's markdown body for timeline and detail
// views. Raw HTML in the source is escaped by goldmark's default renderer.
func RenderEntryBody(body string) (string, error) {
	var output bytes.Buffer
	if err := entryBodyMarkdown.Convert([]byte(body), &output); err != nil {
		return "", err
	}
	return output.String(), nil
}
