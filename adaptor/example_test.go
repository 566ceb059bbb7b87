package adaptor_test

import (
	"os"

	"github.com/katalvlaran/lvlath-patterns/adaptor"
)

// ExamplePrintBanner shows a Banner being used through the Print interface.
func ExamplePrintBanner() {
	var p adaptor.Print = adaptor.NewPrintBanner(adaptor.NewBanner("Hello"))
	_ = p.PrintWeak(os.Stdout)
	_ = p.PrintStrong(os.Stdout)
	// Output:
	// (Hello)
	// *Hello*
}
