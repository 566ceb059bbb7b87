package mediator_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-patterns/mediator"
)

// ExampleLoginFrame walks the dialog from guest mode to a full login.
func ExampleLoginFrame() {
	f := mediator.NewLoginFrame()
	fmt.Println("ok enabled:", f.OK.Enabled())

	_ = f.Login.Click()
	fmt.Println("ok enabled:", f.OK.Enabled())

	_ = f.Username.SetText("alice")
	_ = f.Password.SetText("secret")
	_ = f.OK.Press()
	fmt.Println(f.Outcome())
	// Output:
	// ok enabled: true
	// ok enabled: false
	// submitted
}
