package iterator

import (
	"fmt"
	"iter"
)

// BookShelf is an ordered collection of books.
type BookShelf struct {
	books []Book
}

// NewBookShelf returns an empty shelf with room for capacity books before
// it needs to grow.
func NewBookShelf(capacity int) *BookShelf {
	if capacity < 0 {
		capacity = 0
	}
	return &BookShelf{books: make([]Book, 0, capacity)}
}

// ShelfOf returns a shelf holding books in order.
func ShelfOf(books ...Book) *BookShelf {
	s := NewBookShelf(len(books))
	s.books = append(s.books, books...)
	return s
}

// Append adds b at the end.
func (s *BookShelf) Append(b Book) { s.books = append(s.books, b) }

// Len returns the number of books.
func (s *BookShelf) Len() int { return len(s.books) }

// At returns the book at index i.
func (s *BookShelf) At(i int) (Book, error) {
	if i < 0 || i >= len(s.books) {
		return Book{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.books))
	}
	return s.books[i], nil
}

// Iterator returns a cursor positioned before the first book.
func (s *BookShelf) Iterator() Iterator[Book] {
	return &shelfIterator{shelf: s}
}

// All yields every book in order.
func (s *BookShelf) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range s.books {
			if !yield(b) {
				return
			}
		}
	}
}

type shelfIterator struct {
	shelf *BookShelf
	index int
}

func (it *shelfIterator) HasNext() bool { return it.index < it.shelf.Len() }

func (it *shelfIterator) Next() (Book, error) {
	if !it.HasNext() {
		return Book{}, ErrExhausted
	}
	b := it.shelf.books[it.index]
	it.index++
	return b, nil
}

var _ Aggregate[Book] = (*BookShelf)(nil)
