package visitor

import (
	"fmt"
	"html"
	"io"

	"github.com/goccy/go-json"
)

// HTMLExporter renders elements as HTML fragments.
type HTMLExporter struct {
	w io.Writer
}

// NewHTMLExporter returns an exporter writing to w.
func NewHTMLExporter(w io.Writer) *HTMLExporter { return &HTMLExporter{w: w} }

func (e *HTMLExporter) VisitTitle(t *Title) error {
	_, err := fmt.Fprintf(e.w, "<h1>%s</h1>\n", html.EscapeString(t.Text))
	return err
}

func (e *HTMLExporter) VisitText(t *Text) error {
	_, err := fmt.Fprintf(e.w, "<p>%s</p>\n", html.EscapeString(t.Text))
	return err
}

func (e *HTMLExporter) VisitHyperLink(l *HyperLink) error {
	_, err := fmt.Fprintf(e.w, "<a href=\"%s\">%s</a>\n", html.EscapeString(l.URL), html.EscapeString(l.Text))
	return err
}

// PlainTextExporter renders elements as plain lines.
type PlainTextExporter struct {
	w io.Writer
}

// NewPlainTextExporter returns an exporter writing to w.
func NewPlainTextExporter(w io.Writer) *PlainTextExporter { return &PlainTextExporter{w: w} }

func (e *PlainTextExporter) VisitTitle(t *Title) error { return e.line(t.Text) }
func (e *PlainTextExporter) VisitText(t *Text) error   { return e.line(t.Text) }
func (e *PlainTextExporter) VisitHyperLink(l *HyperLink) error {
	return e.line(l.Text + " " + l.URL)
}

func (e *PlainTextExporter) line(s string) error {
	_, err := fmt.Fprintln(e.w, s)
	return err
}

// Part is one exported element in JSONExporter output.
type Part struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// JSONExporter collects parts for JSON encoding.
type JSONExporter struct {
	parts []Part
}

// NewJSONExporter returns an empty exporter.
func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

func (e *JSONExporter) VisitTitle(t *Title) error {
	e.parts = append(e.parts, Part{Kind: KindTitle.String(), Text: t.Text})
	return nil
}

func (e *JSONExporter) VisitText(t *Text) error {
	e.parts = append(e.parts, Part{Kind: KindText.String(), Text: t.Text})
	return nil
}

func (e *JSONExporter) VisitHyperLink(l *HyperLink) error {
	e.parts = append(e.parts, Part{Kind: KindLink.String(), Text: l.Text, URL: l.URL})
	return nil
}

// Parts returns what has been collected so far.
func (e *JSONExporter) Parts() []Part { return e.parts }

// MarshalJSON encodes the collected parts as an array; an exporter that has
// seen nothing encodes as [].
func (e *JSONExporter) MarshalJSON() ([]byte, error) {
	if e.parts == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e.parts)
}

// Encode writes the collected parts to w as one JSON line.
func (e *JSONExporter) Encode(w io.Writer) error {
	data, err := e.MarshalJSON()
	if err != nil {
		return fmt.Errorf("visitor: encode: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

var (
	_ Visitor = (*HTMLExporter)(nil)
	_ Visitor = (*PlainTextExporter)(nil)
	_ Visitor = (*JSONExporter)(nil)
)
