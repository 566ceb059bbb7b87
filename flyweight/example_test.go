package flyweight_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlath-patterns/flyweight"
)

// ExampleNewBigString prints "1-1"; the second '1' reuses the first glyph.
func ExampleNewBigString() {
	f, _ := flyweight.NewFactory()
	s, err := flyweight.NewBigString("1-1", f)
	if err != nil {
		panic(err)
	}
	_ = s.Print(os.Stdout)
	fmt.Println("loads:", f.Loads())
	// Output:
	// ..#...
	// .##...
	// ..#...
	// ..#...
	// ..#...
	// ..#...
	// .###..
	// ......
	// ......
	// ......
	// #####.
	// ......
	// ......
	// ......
	// ..#...
	// .##...
	// ..#...
	// ..#...
	// ..#...
	// ..#...
	// .###..
	// loads: 2
}
