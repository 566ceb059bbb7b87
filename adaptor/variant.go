package adaptor

import "io"

// Printer is the closed-variant adapter. The set of adaptees is fixed by
// PrintKind and every operation switches on it.
type Printer struct {
	kind   PrintKind
	banner *Banner
}

// OfBanner returns a Printer wrapping b.
func OfBanner(b *Banner) Printer {
	return Printer{kind: KindBanner, banner: b}
}

// Kind reports which adaptee p wraps.
func (p Printer) Kind() PrintKind { return p.kind }

// PrintWeak writes the weak form of the wrapped adaptee.
func (p Printer) PrintWeak(w io.Writer) error {
	switch p.kind {
	case KindBanner:
		if p.banner == nil {
			return ErrNilBanner
		}
		return p.banner.ShowWithParen(w)
	default:
		return ErrUnknownKind
	}
}

// PrintStrong writes the strong form of the wrapped adaptee.
func (p Printer) PrintStrong(w io.Writer) error {
	switch p.kind {
	case KindBanner:
		if p.banner == nil {
			return ErrNilBanner
		}
		return p.banner.ShowWithAster(w)
	default:
		return ErrUnknownKind
	}
}
