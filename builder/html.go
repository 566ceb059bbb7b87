package builder

import (
	"html"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// HTMLBuilder renders the document as an HTML page written on Close.
type HTMLBuilder struct {
	docState
	cfg  builderConfig
	sb   strings.Builder
	path string
}

// NewHTMLBuilder returns an HTMLBuilder configured by opts.
func NewHTMLBuilder(opts ...BuilderOption) *HTMLBuilder {
	return &HTMLBuilder{cfg: newBuilderConfig(opts...)}
}

// MakeTitle writes the page head and the <h1>. The title also names the file.
func (b *HTMLBuilder) MakeTitle(title string) error {
	const method = "HTMLBuilder.MakeTitle"
	if title == "" || title == "." || title == ".." || strings.ContainsAny(title, `/\`) {
		return builderErrorf(method, ErrBadTitle)
	}
	if err := b.setTitle(method, title); err != nil {
		return err
	}
	t := html.EscapeString(title)
	b.sb.WriteString("<!DOCTYPE html>\n<html>\n")
	b.sb.WriteString("<head><title>" + t + "</title></head>\n")
	b.sb.WriteString("<body>\n<h1>" + t + "</h1>\n\n")
	return nil
}

// MakeString writes a paragraph.
func (b *HTMLBuilder) MakeString(str string) error {
	if err := b.titled("HTMLBuilder.MakeString"); err != nil {
		return err
	}
	b.sb.WriteString("<p>" + html.EscapeString(str) + "</p>\n\n")
	return nil
}

// MakeItems writes an unordered list.
func (b *HTMLBuilder) MakeItems(items []string) error {
	if err := b.titled("HTMLBuilder.MakeItems"); err != nil {
		return err
	}
	b.sb.WriteString("<ul>\n")
	for _, it := range items {
		b.sb.WriteString("<li>" + html.EscapeString(it) + "</li>\n")
	}
	b.sb.WriteString("</ul>\n\n")
	return nil
}

// Close finishes the page and writes it to <output dir>/<title>.html.
func (b *HTMLBuilder) Close() error {
	const method = "HTMLBuilder.Close"
	if err := b.titled(method); err != nil {
		return err
	}

	// The buffer changes only after the file is written.
	const tail = "</body></html>\n"
	doc := b.sb.String() + tail
	path := filepath.Join(b.cfg.outputDir, b.title+".html")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return builderErrorf(method, err)
	}
	b.sb.WriteString(tail)
	b.path = path
	b.closed = true
	b.cfg.logger.Debug("html document written",
		zap.String("path", path),
		zap.Int("bytes", b.sb.Len()),
	)
	return nil
}

// Result returns the path of the written file.
func (b *HTMLBuilder) Result() (string, error) {
	if !b.closed {
		return "", ErrNotClosed
	}
	return b.path, nil
}

// Document returns the HTML rendered so far.
func (b *HTMLBuilder) Document() string {
	return b.sb.String()
}

var _ Builder = (*HTMLBuilder)(nil)
