package iterator_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-patterns/iterator"
)

// ExampleBookShelf_All ranges over a shelf.
func ExampleBookShelf_All() {
	shelf := iterator.ShelfOf(
		iterator.Book{Name: "Bible"},
		iterator.Book{Name: "Cinderella"},
	)
	for b := range shelf.All() {
		fmt.Println(b.Name)
	}
	// Output:
	// Bible
	// Cinderella
}
