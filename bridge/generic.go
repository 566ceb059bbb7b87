package bridge

import "io"

// GenericDisplay is the statically dispatched abstraction: the Impl type
// is fixed at compile time.
type GenericDisplay[I Impl] struct {
	impl I
}

// NewGenericDisplay returns a GenericDisplay over impl.
func NewGenericDisplay[I Impl](impl I) *GenericDisplay[I] {
	return &GenericDisplay[I]{impl: impl}
}

// Impl returns the wrapped implementation with its concrete type.
func (d *GenericDisplay[I]) Impl() I { return d.impl }

// Open forwards to RawOpen.
func (d *GenericDisplay[I]) Open(w io.Writer) error { return d.impl.RawOpen(w) }

// Print forwards to RawPrint.
func (d *GenericDisplay[I]) Print(w io.Writer) error { return d.impl.RawPrint(w) }

// Close forwards to RawClose.
func (d *GenericDisplay[I]) Close(w io.Writer) error { return d.impl.RawClose(w) }

// Display runs Open, Print and Close.
func (d *GenericDisplay[I]) Display(w io.Writer) error {
	return run(w, d.Open, d.Print, d.Close)
}

// GenericCountDisplay adds MultiDisplay to GenericDisplay.
type GenericCountDisplay[I Impl] struct {
	*GenericDisplay[I]
}

// NewGenericCountDisplay returns a GenericCountDisplay over impl.
func NewGenericCountDisplay[I Impl](impl I) *GenericCountDisplay[I] {
	return &GenericCountDisplay[I]{GenericDisplay: NewGenericDisplay(impl)}
}

// MultiDisplay writes Open, times × Print, Close.
func (c *GenericCountDisplay[I]) MultiDisplay(w io.Writer, times int) error {
	if times < 0 {
		return ErrNegativeTimes
	}
	return multi(w, times, c.Open, c.Print, c.Close)
}

var (
	_ Display = (*GenericDisplay[*StringImpl])(nil)
	_ Display = (*GenericCountDisplay[*StringImpl])(nil)
)
