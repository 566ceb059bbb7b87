package visitor

import "fmt"

// Title is a heading.
type Title struct {
	Text string
}

// Accept calls v.VisitTitle.
func (t *Title) Accept(v Visitor) error { return v.VisitTitle(t) }

// Text is a paragraph.
type Text struct {
	Text string
}

// Accept calls v.VisitText.
func (t *Text) Accept(v Visitor) error { return v.VisitText(t) }

// HyperLink is a link with a label.
type HyperLink struct {
	Text string
	URL  string
}

// Accept calls v.VisitHyperLink.
func (l *HyperLink) Accept(v Visitor) error { return v.VisitHyperLink(l) }

// Document is an ordered list of parts. It is itself an Element.
type Document struct {
	Parts []Element
}

// NewDocument returns a document of parts.
func NewDocument(parts ...Element) *Document { return &Document{Parts: parts} }

// Accept visits every part in order and stops at the first error.
func (d *Document) Accept(v Visitor) error {
	for i, p := range d.Parts {
		if p == nil {
			return fmt.Errorf("%w: part %d", ErrNilElement, i)
		}
		if err := p.Accept(v); err != nil {
			return fmt.Errorf("visitor: part %d: %w", i, err)
		}
	}
	return nil
}

var (
	_ Element = (*Title)(nil)
	_ Element = (*Text)(nil)
	_ Element = (*HyperLink)(nil)
	_ Element = (*Document)(nil)
)
