// Package iterator shows the Iterator pattern over a book shelf.
//
// BookShelf is the aggregate. It offers two ways to walk its books:
//
//   - Iterator returns an explicit cursor (HasNext / Next), the classic
//     shape, useful when the walk is interleaved with other work.
//   - All returns an iter.Seq[Book] for use with range-over-func:
//
//	for b := range shelf.All() {
//		fmt.Println(b.Name)
//	}
//
// Both see the books in append order. A cursor created before an Append
// does observe the appended book, because it reads the shelf lazily.
package iterator
