// Package patterns is a gallery of the classic object-oriented design
// patterns, written as small, testable Go packages.
//
// 🚀 What is lvlath-patterns?
//
//	Eighteen patterns, each in its own package, each shown up to three ways:
//		• Interfaces: the textbook shape, one type per role
//		• Closed variant: one struct, a Kind tag and a switch per operation
//		• Generics: type parameters where the pattern has a natural container
//
// ✨ Why use it?
//
//   - Every operation writes to an io.Writer and returns an error
//   - Randomness is injected (WithSeed / WithRand), so output is reproducible
//   - Stateful packages log through zap when given WithLogger, and are
//     silent otherwise
//   - Each package has an example_test.go that doubles as documentation
//
// Packages:
//
//	adaptor/                 — Banner adapted to the Print interface
//	bridge/                  — Display abstraction over an Impl
//	builder/                 — Director with text and HTML builders
//	chain_of_responsibility/ — troubles handed along a support chain
//	command/                 — echo commands and an undoable macro
//	composite/               — files and directories as one Entry
//	decorator/               — side and full borders around a display
//	factory_method/          — ID cards made by a factory
//	flyweight/               — big characters sharing pooled glyphs
//	iterator/                — a book shelf walked by an Iterator or range
//	mediator/                — a login dialog whose controls talk via a frame
//	observer/                — number generators notifying observers
//	proxy/                   — a printer realized on first print
//	singleton/               — process-wide instances and ticket numbers
//	state/                   — a safe that behaves differently day and night
//	strategy/                — rock-paper-scissors players with strategies
//	template_method/         — a fixed display skeleton with varying steps
//	visitor/                 — a document exported to HTML, text and JSON
//
// Every scenario can be run from the command line:
//
//	go run ./cmd/patterns list
//	go run ./cmd/patterns run observer --seed 7
//	go run ./cmd/patterns run --all --config patterns.yaml
package patterns
