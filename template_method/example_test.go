package template_method_test

import (
	"os"

	tm "github.com/katalvlaran/lvlath-patterns/template_method"
)

// ExampleDisplay runs the same template over two operations.
func ExampleDisplay() {
	_ = tm.Display(os.Stdout, tm.NewCharDisplay('H'))
	_ = tm.Display(os.Stdout, tm.NewStringDisplay("Hi"))
	// Output:
	// <<HHHHH>>
	// +--+
	// |Hi|
	// |Hi|
	// |Hi|
	// |Hi|
	// |Hi|
	// +--+
}
