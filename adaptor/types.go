package adaptor

import (
	"errors"
	"io"
)

// Sentinel errors for the adaptor package.
var (
	// ErrNilBanner indicates that an adapter was built around a nil *Banner.
	ErrNilBanner = errors.New("adaptor: banner is nil")

	// ErrUnknownKind indicates a Printer whose kind tag is not recognised
	// (typically the zero value).
	ErrUnknownKind = errors.New("adaptor: unknown printer kind")
)

// Print is the interface clients program against.
type Print interface {
	// PrintWeak writes the text in its weak (parenthesised) form.
	PrintWeak(w io.Writer) error
	// PrintStrong writes the text in its strong (asterisk) form.
	PrintStrong(w io.Writer) error
}

// PrintKind tags the adaptee wrapped by a closed-variant Printer.
type PrintKind int

const (
	// KindUnknown is the zero value and is rejected by every operation.
	KindUnknown PrintKind = iota
	// KindBanner wraps a *Banner.
	KindBanner
)

// String returns a readable kind name.
func (k PrintKind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	default:
		return "unknown"
	}
}
