package chain_of_responsibility

import (
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"
)

// Chain dispatches troubles starting at a head handler.
type Chain struct {
	head Support
	opts Options
}

// NewChain returns a Chain starting at head.
func NewChain(head Support, opts ...Option) *Chain {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Chain{head: head, opts: cfg}
}

// Handle walks the chain until a handler resolves t, writes the outcome line
// to w, and returns the resolving handler (nil if nobody resolved it).
//
// The walk is iterative, so chain length does not grow the call stack.
func (c *Chain) Handle(w io.Writer, t Trouble) (Support, error) {
	if c.head == nil {
		return nil, ErrNilSupport
	}

	seen := make(map[Support]struct{})
	for s := c.head; s != nil; s = s.Next() {
		if !reflect.ValueOf(s).Comparable() {
			return nil, fmt.Errorf("%w: %T", ErrNotComparable, s)
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: at %s", ErrCycle, s)
		}
		seen[s] = struct{}{}

		if s.Resolve(t) {
			c.opts.Logger.Debug("trouble resolved",
				zap.Int("trouble", t.Number),
				zap.Stringer("by", s),
			)
			_, err := fmt.Fprintf(w, "%s is resolved by %s.\n", t, s)
			return s, err
		}
		c.opts.Logger.Debug("trouble passed on",
			zap.Int("trouble", t.Number),
			zap.Stringer("from", s),
		)
	}

	_, err := fmt.Fprintf(w, "%s cannot be resolved.\n", t)
	return nil, err
}

// Handle is shorthand for NewChain(head).Handle(w, t).
func Handle(w io.Writer, head Support, t Trouble) (Support, error) {
	return NewChain(head).Handle(w, t)
}
