package iterator

import "errors"

// Sentinel errors for the iterator package.
var (
	// ErrIndexOutOfRange indicates At was called with a bad index.
	ErrIndexOutOfRange = errors.New("iterator: index out of range")

	// ErrExhausted indicates Next was called after the last element.
	ErrExhausted = errors.New("iterator: no more elements")
)

// Iterator walks a sequence of T.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Aggregate can produce an Iterator over its elements.
type Aggregate[T any] interface {
	Iterator() Iterator[T]
}

// Book is the element stored on a shelf.
type Book struct {
	Name string
}
