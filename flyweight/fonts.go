package flyweight

import (
	"embed"
	"io/fs"
)

//go:embed fonts/*.txt
var fonts embed.FS

func embeddedFonts() fs.FS {
	sub, err := fs.Sub(fonts, "fonts")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}

// glyphFile is the font file name for r.
func glyphFile(r rune) string { return "big" + string(r) + ".txt" }
