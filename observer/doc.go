// Package observer shows the Observer pattern: a NumberGenerator produces
// numbers and pushes each one to every registered Observer.
//
// Generators:
//
//   - RandomNumberGenerator draws Iterations numbers in [0, 50) from an
//     injected *rand.Rand (WithSeed / WithRand), so runs are reproducible.
//   - IncrementalNumberGenerator counts from start (inclusive) to end
//     (exclusive) by step.
//
// Observers:
//
//   - DigitObserver writes "DigitObserver:N".
//   - GraphObserver writes "GraphObserver:" followed by N stars.
//   - MetricsObserver exports the last number as a Prometheus gauge and
//     counts updates.
//   - Variant is the closed rendition (KindDigit, KindGraph, KindFunc).
//
// Observers are notified in registration order and removed by identity,
// so they must be comparable (pointer types are). A struct value holding a
// slice, map or func behind an interface field is rejected with
// ErrNotComparable. An observer may delete itself from inside Update; the
// current round still reaches everyone registered when it began. WithDelay adds a pause
// after each write; the pause ends early when ctx is cancelled.
//
// Errors:
//
//   - ErrNilObserver:      AddObserver(nil).
//   - ErrNotComparable:    the observer's dynamic type cannot be compared.
//   - ErrObserverNotFound: DeleteObserver for an unregistered observer.
//   - ErrBadStep:          IncrementalNumberGenerator with step <= 0.
package observer
