package builder

// Builder is the set of construction steps a Director can issue.
type Builder interface {
	MakeTitle(title string) error
	MakeString(str string) error
	MakeItems(items []string) error
	Close() error
}

// Director issues construction steps in a fixed order.
type Director struct {
	builder Builder
}

// NewDirector returns a Director that drives b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// Construct builds the greeting document. It stops at the first failing step.
func (d *Director) Construct() error {
	steps := []func() error{
		func() error { return d.builder.MakeTitle("Greeting") },
		func() error { return d.builder.MakeString("From morning to afternoon") },
		func() error { return d.builder.MakeItems([]string{"Good morning.", "Good afternoon."}) },
		func() error { return d.builder.MakeString("In the evening") },
		func() error { return d.builder.MakeItems([]string{"Good evening.", "Good night.", "Good bye."}) },
		d.builder.Close,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// docState tracks the title/closed bookkeeping shared by all builders.
type docState struct {
	title  string
	closed bool
}

func (s *docState) setTitle(method, title string) error {
	if err := s.open(method); err != nil {
		return err
	}
	if s.title != "" {
		return builderErrorf(method, ErrTitleSet)
	}
	s.title = title
	return nil
}

func (s *docState) open(method string) error {
	if s.closed {
		return builderErrorf(method, ErrClosed)
	}
	return nil
}

// titled is open plus the requirement that MakeTitle came first. Every step
// after the title goes through it.
func (s *docState) titled(method string) error {
	if err := s.open(method); err != nil {
		return err
	}
	if s.title == "" {
		return builderErrorf(method, ErrNoTitle)
	}
	return nil
}
