package strategy

import (
	"fmt"
	"math/rand"
)

// Variant is the closed rendition: every strategy in one struct.
type Variant struct {
	kind    Kind
	rng     *rand.Rand
	won     bool
	prev    Hand
	current Hand
	history [handCount][handCount]int
}

// StrategyOf returns a Variant of the given kind.
func StrategyOf(kind Kind, opts ...Option) (*Variant, error) {
	v := &Variant{kind: kind, rng: buildOptions(opts).Rand}
	switch kind {
	case KindWinning, KindRandom:
	case KindProbe:
		for i := range v.history {
			for j := range v.history[i] {
				v.history[i][j] = 1
			}
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return v, nil
}

// Kind returns the tag of v.
func (v *Variant) Kind() Kind { return v.kind }

// NextHand dispatches on the kind.
func (v *Variant) NextHand() Hand {
	switch v.kind {
	case KindWinning:
		if !v.won {
			v.prev = Hand(v.rng.Intn(handCount))
		}
		return v.prev
	case KindProbe:
		row := v.history[v.current]
		bet := v.rng.Intn(row[0] + row[1] + row[2])
		next := Scissors
		switch {
		case bet < row[0]:
			next = Rock
		case bet < row[0]+row[1]:
			next = Paper
		}
		v.prev, v.current = v.current, next
		return next
	default:
		return Hand(v.rng.Intn(handCount))
	}
}

// Study dispatches on the kind.
func (v *Variant) Study(win bool) {
	switch v.kind {
	case KindWinning:
		v.won = win
	case KindProbe:
		if win {
			v.history[v.prev][v.current]++
			return
		}
		v.history[v.prev][(v.current+1)%handCount]++
		v.history[v.prev][(v.current+2)%handCount]++
	}
}

var _ Strategy = (*Variant)(nil)
