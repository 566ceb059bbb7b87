package bridge

import "io"

// Variant is the closed rendition of the abstraction side.
type Variant struct {
	kind  Kind
	impl  Impl
	inner *Variant // set for KindCount
}

// OfDefault returns a KindDefault variant over impl.
func OfDefault(impl Impl) Variant {
	return Variant{kind: KindDefault, impl: impl}
}

// OfCount returns a KindCount variant wrapping a default variant over impl.
func OfCount(impl Impl) Variant {
	inner := OfDefault(impl)
	return Variant{kind: KindCount, inner: &inner}
}

// Kind reports the variant's tag.
func (v Variant) Kind() Kind { return v.kind }

// Open dispatches on kind.
func (v Variant) Open(w io.Writer) error {
	switch v.kind {
	case KindDefault:
		if v.impl == nil {
			return ErrNilImpl
		}
		return v.impl.RawOpen(w)
	case KindCount:
		return v.inner.Open(w)
	default:
		return ErrUnknownKind
	}
}

// Print dispatches on kind.
func (v Variant) Print(w io.Writer) error {
	switch v.kind {
	case KindDefault:
		if v.impl == nil {
			return ErrNilImpl
		}
		return v.impl.RawPrint(w)
	case KindCount:
		return v.inner.Print(w)
	default:
		return ErrUnknownKind
	}
}

// Close dispatches on kind.
func (v Variant) Close(w io.Writer) error {
	switch v.kind {
	case KindDefault:
		if v.impl == nil {
			return ErrNilImpl
		}
		return v.impl.RawClose(w)
	case KindCount:
		return v.inner.Close(w)
	default:
		return ErrUnknownKind
	}
}

// Display runs Open, Print and Close.
func (v Variant) Display(w io.Writer) error {
	return run(w, v.Open, v.Print, v.Close)
}

// CountVariant exposes the operations only a KindCount variant has.
type CountVariant struct {
	inner *Variant
}

// AsCount returns the count view of v, or false if v is not KindCount.
func (v Variant) AsCount() (CountVariant, bool) {
	if v.kind != KindCount {
		return CountVariant{}, false
	}
	return CountVariant{inner: v.inner}, true
}

// MultiDisplay writes Open, times × Print, Close.
func (c CountVariant) MultiDisplay(w io.Writer, times int) error {
	if times < 0 {
		return ErrNegativeTimes
	}
	return multi(w, times, c.inner.Open, c.inner.Print, c.inner.Close)
}

var _ Display = Variant{}
