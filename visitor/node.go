package visitor

import (
	"fmt"
	"html"
	"io"
)

// Node is the closed rendition of Element.
type Node struct {
	Kind Kind
	Text string
	URL  string // KindLink only
}

// TitleNode, TextNode and LinkNode build Nodes.
func TitleNode(text string) Node     { return Node{Kind: KindTitle, Text: text} }
func TextNode(text string) Node      { return Node{Kind: KindText, Text: text} }
func LinkNode(text, url string) Node { return Node{Kind: KindLink, Text: text, URL: url} }

// Walk calls fn for every node in order and stops at the first error.
func Walk(nodes []Node, fn func(Node) error) error {
	for i, n := range nodes {
		if err := fn(n); err != nil {
			return fmt.Errorf("visitor: node %d: %w", i, err)
		}
	}
	return nil
}

// HTMLFunc returns a Walk function producing HTMLExporter output.
func HTMLFunc(w io.Writer) func(Node) error {
	return func(n Node) error {
		var err error
		switch n.Kind {
		case KindTitle:
			_, err = fmt.Fprintf(w, "<h1>%s</h1>\n", html.EscapeString(n.Text))
		case KindText:
			_, err = fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(n.Text))
		case KindLink:
			_, err = fmt.Fprintf(w, "<a href=\"%s\">%s</a>\n", html.EscapeString(n.URL), html.EscapeString(n.Text))
		default:
			err = fmt.Errorf("%w: %d", ErrUnknownKind, int(n.Kind))
		}
		return err
	}
}

// PlainTextFunc returns a Walk function producing PlainTextExporter output.
func PlainTextFunc(w io.Writer) func(Node) error {
	return func(n Node) error {
		s := n.Text
		switch n.Kind {
		case KindTitle, KindText:
		case KindLink:
			s += " " + n.URL
		default:
			return fmt.Errorf("%w: %d", ErrUnknownKind, int(n.Kind))
		}
		_, err := fmt.Fprintln(w, s)
		return err
	}
}

// Element converts n to the interface rendition.
func (n Node) Element() (Element, error) {
	switch n.Kind {
	case KindTitle:
		return &Title{Text: n.Text}, nil
	case KindText:
		return &Text{Text: n.Text}, nil
	case KindLink:
		return &HyperLink{Text: n.Text, URL: n.URL}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(n.Kind))
}
