package visitor

import "errors"

// Sentinel errors for the visitor package.
var (
	// ErrNilElement indicates a nil part in a Document.
	ErrNilElement = errors.New("visitor: element is nil")

	// ErrUnknownKind indicates a Node with an unsupported kind.
	ErrUnknownKind = errors.New("visitor: unknown node kind")
)

// Visitor has one method per element type.
type Visitor interface {
	VisitTitle(t *Title) error
	VisitText(t *Text) error
	VisitHyperLink(l *HyperLink) error
}

// Element is a part of a document.
type Element interface {
	Accept(v Visitor) error
}

// Kind tags a Node.
type Kind int

const (
	KindTitle Kind = iota
	KindText
	KindLink
)

// String returns "title", "text" or "link".
func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindText:
		return "text"
	case KindLink:
		return "link"
	default:
		return "unknown"
	}
}
