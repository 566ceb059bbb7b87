package template_method_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tm "github.com/katalvlaran/lvlath-patterns/template_method"
)

func TestDisplay_AllRenditions(t *testing.T) {
	helloBox := "+------------+\n" + strings.Repeat("|Hello,world.|\n", 5) + "+------------+\n"
	cases := []struct {
		name string
		run  func(*bytes.Buffer) error
		want string
	}{
		{"char", func(b *bytes.Buffer) error { return tm.Display(b, tm.NewCharDisplay('H')) }, "<<HHHHH>>\n"},
		{"string", func(b *bytes.Buffer) error { return tm.Display(b, tm.NewStringDisplay("Hello,world.")) }, helloBox},
		{"kinded-char", func(b *bytes.Buffer) error { return tm.OfChar('H').Display(b) }, "<<HHHHH>>\n"},
		{"kinded-string", func(b *bytes.Buffer) error { return tm.OfString("Hello,world.").Display(b) }, helloBox},
		{"generic-char", func(b *bytes.Buffer) error { return tm.DisplayOf(b, tm.NewCharDisplay('H')) }, "<<HHHHH>>\n"},
		{"generic-string", func(b *bytes.Buffer) error { return tm.DisplayOf(b, tm.NewStringDisplay("Hello,world.")) }, helloBox},
		{"kinded-via-interface", func(b *bytes.Buffer) error { return tm.Display(b, tm.OfChar('x')) }, "<<xxxxx>>\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tc.run(&buf); err != nil {
				t.Fatalf("display: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got\n%s\nwant\n%s", buf.String(), tc.want)
			}
		})
	}
}

func TestStringDisplay_RuneWidth(t *testing.T) {
	var buf bytes.Buffer
	if err := tm.Display(&buf, tm.NewStringDisplay("日本")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "+--+\n|日本|\n") {
		t.Fatalf("rule width should count runes, got %q", buf.String())
	}
}

var errStop = errors.New("stop")

// failAfter errors on the n-th write.
type failAfter struct{ n int }

func (f *failAfter) Write(p []byte) (int, error) {
	f.n--
	if f.n < 0 {
		return 0, errStop
	}
	return len(p), nil
}

func TestDisplay_StopsOnError(t *testing.T) {
	w := &failAfter{n: 3} // open + two prints succeed
	if err := tm.Display(w, tm.NewCharDisplay('z')); !errors.Is(err, errStop) {
		t.Fatalf("got %v, want errStop", err)
	}
	if w.n != -1 {
		t.Fatalf("template kept writing after the error: n=%d", w.n)
	}
}
