package bridge

import "io"

// DefaultDisplay forwards each step to its Impl.
type DefaultDisplay struct {
	impl Impl
}

// NewDisplay returns a DefaultDisplay over impl.
func NewDisplay(impl Impl) *DefaultDisplay {
	return &DefaultDisplay{impl: impl}
}

// Open forwards to Impl.RawOpen.
func (d *DefaultDisplay) Open(w io.Writer) error {
	if d.impl == nil {
		return ErrNilImpl
	}
	return d.impl.RawOpen(w)
}

// Print forwards to Impl.RawPrint.
func (d *DefaultDisplay) Print(w io.Writer) error {
	if d.impl == nil {
		return ErrNilImpl
	}
	return d.impl.RawPrint(w)
}

// Close forwards to Impl.RawClose.
func (d *DefaultDisplay) Close(w io.Writer) error {
	if d.impl == nil {
		return ErrNilImpl
	}
	return d.impl.RawClose(w)
}

// Display runs Open, Print and Close, stopping at the first error.
func (d *DefaultDisplay) Display(w io.Writer) error {
	return run(w, d.Open, d.Print, d.Close)
}

// CountDisplay extends DefaultDisplay with MultiDisplay.
type CountDisplay struct {
	*DefaultDisplay
}

// NewCountDisplay returns a CountDisplay over impl.
func NewCountDisplay(impl Impl) *CountDisplay {
	return &CountDisplay{DefaultDisplay: NewDisplay(impl)}
}

// MultiDisplay writes Open, times × Print, Close.
func (c *CountDisplay) MultiDisplay(w io.Writer, times int) error {
	if times < 0 {
		return ErrNegativeTimes
	}
	return multi(w, times, c.Open, c.Print, c.Close)
}

// RandomCountDisplay extends CountDisplay with a random repetition count.
type RandomCountDisplay struct {
	*CountDisplay
	opts Options
}

// NewRandomCountDisplay returns a RandomCountDisplay over impl.
func NewRandomCountDisplay(impl Impl, opts ...Option) *RandomCountDisplay {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RandomCountDisplay{CountDisplay: NewCountDisplay(impl), opts: cfg}
}

// RandomDisplay prints the body a random number of times in [0, max) and
// returns the count it drew.
func (r *RandomCountDisplay) RandomDisplay(w io.Writer, max int) (int, error) {
	if max <= 0 {
		return 0, ErrNegativeTimes
	}
	n := r.opts.Rand.Intn(max)
	return n, r.MultiDisplay(w, n)
}

// run calls each step in order and returns the first error.
func run(w io.Writer, steps ...func(io.Writer) error) error {
	for _, step := range steps {
		if err := step(w); err != nil {
			return err
		}
	}
	return nil
}

// multi is open, times × body, close.
func multi(w io.Writer, times int, open, body, end func(io.Writer) error) error {
	if err := open(w); err != nil {
		return err
	}
	for i := 0; i < times; i++ {
		if err := body(w); err != nil {
			return err
		}
	}
	return end(w)
}

var (
	_ Display = (*DefaultDisplay)(nil)
	_ Display = (*CountDisplay)(nil)
	_ Display = (*RandomCountDisplay)(nil)
)
