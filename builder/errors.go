// SPDX-License-Identifier: MIT
// Package: lvlath-patterns/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Filesystem failures are wrapped with %w and keep their *PathError.

package builder

import (
	"errors"
	"fmt"
)

// ErrTitleSet indicates MakeTitle was called a second time for one document.
var ErrTitleSet = errors.New("builder: title already set")

// ErrNoTitle indicates a step that needs the title ran before MakeTitle.
var ErrNoTitle = errors.New("builder: title not set")

// ErrBadTitle indicates a title that cannot be used as a file name.
var ErrBadTitle = errors.New("builder: title is not a valid file name")

// ErrClosed indicates a construction step after Close.
var ErrClosed = errors.New("builder: builder already closed")

// ErrNotClosed indicates Result was requested before Close.
var ErrNotClosed = errors.New("builder: builder not closed yet")

// builderErrorf prefixes err with the builder method that produced it.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
