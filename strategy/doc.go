// Package strategy shows the Strategy pattern with rock-paper-scissors:
// a Player delegates every move to a Strategy and reports each result back
// so the strategy can learn.
//
// Strategies:
//
//   - WinningStrategy repeats a hand that just won, otherwise picks at
//     random.
//   - ProbeStrategy keeps a 3×3 table of how often each hand followed each
//     other hand in winning rounds, and draws the next hand weighted by the
//     row of the current hand.
//   - RandomStrategy ignores results altogether.
//   - Variant (StrategyOf) is the closed rendition of all three.
//
// All randomness comes from an injected *rand.Rand (WithSeed / WithRand), so
// a game between two seeded players always ends the same way.
//
// Play runs the game loop and writes one line per round:
//
//	Winner:[Taro: 1 games, 1 win, 0 lose]
//	Even...
//
// followed by the totals.
package strategy
