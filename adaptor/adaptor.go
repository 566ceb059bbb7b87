package adaptor

import "io"

// PrintBanner adapts a *Banner to Print by delegation.
type PrintBanner struct {
	banner *Banner
}

// NewPrintBanner wraps b. A nil b yields an adapter whose methods return
// ErrNilBanner.
func NewPrintBanner(b *Banner) *PrintBanner {
	return &PrintBanner{banner: b}
}

// PrintWeak forwards to Banner.ShowWithParen.
func (p *PrintBanner) PrintWeak(w io.Writer) error {
	if p.banner == nil {
		return ErrNilBanner
	}
	return p.banner.ShowWithParen(w)
}

// PrintStrong forwards to Banner.ShowWithAster.
func (p *PrintBanner) PrintStrong(w io.Writer) error {
	if p.banner == nil {
		return ErrNilBanner
	}
	return p.banner.ShowWithAster(w)
}

// EmbeddedPrintBanner adapts Banner by embedding it. Banner's own methods
// stay reachable on the adapter; only the Print methods are added.
type EmbeddedPrintBanner struct {
	Banner
}

// NewEmbeddedPrintBanner returns an adapter that owns a Banner for text.
func NewEmbeddedPrintBanner(text string) *EmbeddedPrintBanner {
	return &EmbeddedPrintBanner{Banner: Banner{text: text}}
}

// PrintWeak calls the promoted ShowWithParen.
func (p *EmbeddedPrintBanner) PrintWeak(w io.Writer) error { return p.ShowWithParen(w) }

// PrintStrong calls the promoted ShowWithAster.
func (p *EmbeddedPrintBanner) PrintStrong(w io.Writer) error { return p.ShowWithAster(w) }

var (
	_ Print = (*PrintBanner)(nil)
	_ Print = (*EmbeddedPrintBanner)(nil)
	_ Print = Printer{}
)
