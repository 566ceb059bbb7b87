package chain_of_responsibility

import (
	"fmt"
	"io"
)

// Handler is the closed rendition of Support: every handler is the same
// struct and Resolve switches on kind.
type Handler struct {
	kind  HandlerKind
	name  string
	param int // limit for KindLimit, number for KindSpecial
	next  *Handler
}

// OfNo returns a KindNo handler.
func OfNo(name string) *Handler { return &Handler{kind: KindNo, name: name} }

// OfLimit returns a KindLimit handler.
func OfLimit(name string, limit int) *Handler {
	return &Handler{kind: KindLimit, name: name, param: limit}
}

// OfOdd returns a KindOdd handler.
func OfOdd(name string) *Handler { return &Handler{kind: KindOdd, name: name} }

// OfSpecial returns a KindSpecial handler.
func OfSpecial(name string, number int) *Handler {
	return &Handler{kind: KindSpecial, name: name, param: number}
}

// Kind returns the handler's tag.
func (h *Handler) Kind() HandlerKind { return h.kind }

// SetNext links next after h and returns next.
func (h *Handler) SetNext(next *Handler) *Handler {
	h.next = next
	return next
}

// String renders "[name@Kind]".
func (h *Handler) String() string {
	return fmt.Sprintf("[%s@%s]", h.name, h.kind)
}

// Resolve reports whether h handles t.
func (h *Handler) Resolve(t Trouble) bool {
	switch h.kind {
	case KindLimit:
		return t.Number < h.param
	case KindOdd:
		return t.Number%2 != 0
	case KindSpecial:
		return t.Number == h.param
	default:
		return false
	}
}

// Handle walks from h and writes the outcome line, like Chain.Handle.
func (h *Handler) Handle(w io.Writer, t Trouble) (*Handler, error) {
	if h == nil {
		return nil, ErrNilSupport
	}
	seen := make(map[*Handler]struct{})
	for cur := h; cur != nil; cur = cur.next {
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("%w: at %s", ErrCycle, cur)
		}
		seen[cur] = struct{}{}
		if cur.Resolve(t) {
			_, err := fmt.Fprintf(w, "%s is resolved by %s.\n", t, cur)
			return cur, err
		}
	}
	_, err := fmt.Fprintf(w, "%s cannot be resolved.\n", t)
	return nil, err
}
