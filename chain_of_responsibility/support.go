package chain_of_responsibility

import "fmt"

// Support is one link of the chain.
type Support interface {
	fmt.Stringer
	// Resolve reports whether this handler can deal with t.
	Resolve(t Trouble) bool
	// Next returns the following handler, or nil at the end of the chain.
	Next() Support
	// SetNext links next after this handler and returns next.
	SetNext(next Support) Support
}

// link holds the name and successor shared by every handler.
type link struct {
	name string
	next Support
}

func (l *link) Next() Support { return l.next }

func (l *link) label(kind HandlerKind) string {
	return fmt.Sprintf("[%s@%s]", l.name, kind)
}

// NoSupport never resolves anything.
type NoSupport struct{ link }

// NewNoSupport returns a NoSupport called name.
func NewNoSupport(name string) *NoSupport {
	return &NoSupport{link{name: name}}
}

func (s *NoSupport) String() string            { return s.label(KindNo) }
func (s *NoSupport) Resolve(Trouble) bool      { return false }
func (s *NoSupport) SetNext(n Support) Support { s.next = n; return n }

// LimitSupport resolves troubles numbered below limit.
type LimitSupport struct {
	link
	limit int
}

// NewLimitSupport returns a LimitSupport called name.
func NewLimitSupport(name string, limit int) *LimitSupport {
	return &LimitSupport{link: link{name: name}, limit: limit}
}

func (s *LimitSupport) String() string            { return s.label(KindLimit) }
func (s *LimitSupport) Resolve(t Trouble) bool    { return t.Number < s.limit }
func (s *LimitSupport) SetNext(n Support) Support { s.next = n; return n }

// OddSupport resolves odd-numbered troubles.
type OddSupport struct{ link }

// NewOddSupport returns an OddSupport called name.
func NewOddSupport(name string) *OddSupport {
	return &OddSupport{link{name: name}}
}

func (s *OddSupport) String() string            { return s.label(KindOdd) }
func (s *OddSupport) Resolve(t Trouble) bool    { return t.Number%2 != 0 }
func (s *OddSupport) SetNext(n Support) Support { s.next = n; return n }

// SpecialSupport resolves exactly one trouble number.
type SpecialSupport struct {
	link
	number int
}

// NewSpecialSupport returns a SpecialSupport called name.
func NewSpecialSupport(name string, number int) *SpecialSupport {
	return &SpecialSupport{link: link{name: name}, number: number}
}

func (s *SpecialSupport) String() string            { return s.label(KindSpecial) }
func (s *SpecialSupport) Resolve(t Trouble) bool    { return t.Number == s.number }
func (s *SpecialSupport) SetNext(n Support) Support { s.next = n; return n }

var (
	_ Support = (*NoSupport)(nil)
	_ Support = (*LimitSupport)(nil)
	_ Support = (*OddSupport)(nil)
	_ Support = (*SpecialSupport)(nil)
)
