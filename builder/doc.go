// Package builder shows the Builder pattern: a Director knows the ORDER of
// construction steps for a greeting document, while interchangeable Builders
// decide what each step PRODUCES.
//
// The package offers the following key components:
//
//   - Builder:      the step interface (MakeTitle, MakeString, MakeItems, Close).
//   - Director:     drives a Builder through one fixed document.
//   - TextBuilder:  renders plain text in memory; Result returns the text.
//   - HTMLBuilder:  renders a standalone HTML page and, on Close, writes it to
//     <output dir>/<title>.html; Result returns the file path.
//   - BuilderOption: functional options (WithOutputDir, WithLogger) applied to
//     builderConfig before the builder is used.
//
// Guarantees:
//
//   - A document has exactly one title and it comes first. MakeTitle twice
//     returns ErrTitleSet; MakeString, MakeItems or Close before MakeTitle
//     return ErrNoTitle, for both builders.
//   - A failed HTMLBuilder.Close leaves the document untouched, so Close can
//     be retried once the output directory exists.
//   - Every step after Close returns ErrClosed; Result before Close returns
//     ErrNotClosed (HTMLBuilder only; TextBuilder.Result is always readable).
//   - HTML text is escaped with html.EscapeString.
//   - Titles that would escape the output directory (path separators, "..")
//     are rejected with ErrBadTitle before any file is created.
//
// Plain-text layout produced by Director.Construct:
//
//	==============================
//	[Greeting]
//
//	■From morning to afternoon
//
//	  ・Good morning.
//	  ・Good afternoon.
//
//	■In the evening
//
//	  ・Good evening.
//	  ・Good night.
//	  ・Good bye.
//
//	==============================
package builder
