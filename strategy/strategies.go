package strategy

import "math/rand"

// WinningStrategy keeps a winning hand.
type WinningStrategy struct {
	rng  *rand.Rand
	won  bool
	prev Hand
}

// NewWinningStrategy returns a WinningStrategy.
func NewWinningStrategy(opts ...Option) *WinningStrategy {
	return &WinningStrategy{rng: buildOptions(opts).Rand}
}

// NextHand repeats the previous hand after a win.
func (s *WinningStrategy) NextHand() Hand {
	if !s.won {
		s.prev = Hand(s.rng.Intn(handCount))
	}
	return s.prev
}

// Study remembers whether the last hand won.
func (s *WinningStrategy) Study(win bool) { s.won = win }

// ProbeStrategy learns which hand tends to follow which.
type ProbeStrategy struct {
	rng     *rand.Rand
	prev    Hand
	current Hand
	history [handCount][handCount]int
}

// NewProbeStrategy returns a ProbeStrategy with every weight at 1.
func NewProbeStrategy(opts ...Option) *ProbeStrategy {
	s := &ProbeStrategy{rng: buildOptions(opts).Rand}
	for i := range s.history {
		for j := range s.history[i] {
			s.history[i][j] = 1
		}
	}
	return s
}

// NextHand draws from the row of the current hand, weighted by history.
func (s *ProbeStrategy) NextHand() Hand {
	row := s.history[s.current]
	bet := s.rng.Intn(row[0] + row[1] + row[2])

	next := Scissors
	switch {
	case bet < row[0]:
		next = Rock
	case bet < row[0]+row[1]:
		next = Paper
	}
	s.prev, s.current = s.current, next
	return next
}

// Study strengthens the transition prev → current on a win, and the other
// two transitions from prev on a loss.
func (s *ProbeStrategy) Study(win bool) {
	if win {
		s.history[s.prev][s.current]++
		return
	}
	s.history[s.prev][(s.current+1)%handCount]++
	s.history[s.prev][(s.current+2)%handCount]++
}

// Weights returns a copy of the history table.
func (s *ProbeStrategy) Weights() [handCount][handCount]int { return s.history }

// RandomStrategy picks uniformly and never learns.
type RandomStrategy struct {
	rng *rand.Rand
}

// NewRandomStrategy returns a RandomStrategy.
func NewRandomStrategy(opts ...Option) *RandomStrategy {
	return &RandomStrategy{rng: buildOptions(opts).Rand}
}

func (s *RandomStrategy) NextHand() Hand { return Hand(s.rng.Intn(handCount)) }
func (s *RandomStrategy) Study(bool)     {}

var (
	_ Strategy = (*WinningStrategy)(nil)
	_ Strategy = (*ProbeStrategy)(nil)
	_ Strategy = (*RandomStrategy)(nil)
)
