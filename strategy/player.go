package strategy

import (
	"fmt"
	"io"
)

// Player plays hands chosen by its Strategy and keeps score.
type Player struct {
	name     string
	strategy Strategy
	wins     int
	losses   int
	games    int
}

// NewPlayer returns a player called name.
func NewPlayer(name string, s Strategy) (*Player, error) {
	if s == nil {
		return nil, ErrNilStrategy
	}
	return &Player{name: name, strategy: s}, nil
}

// NextHand asks the strategy.
func (p *Player) NextHand() Hand { return p.strategy.NextHand() }

// Win records a win and tells the strategy.
func (p *Player) Win() {
	p.strategy.Study(true)
	p.wins++
	p.games++
}

// Lose records a loss and tells the strategy.
func (p *Player) Lose() {
	p.strategy.Study(false)
	p.losses++
	p.games++
}

// Even records a draw; the strategy is not told.
func (p *Player) Even() { p.games++ }

func (p *Player) Name() string { return p.name }
func (p *Player) Wins() int    { return p.wins }
func (p *Player) Losses() int  { return p.losses }
func (p *Player) Games() int   { return p.games }

// String renders "[name: G games, W win, L lose]".
func (p *Player) String() string {
	return fmt.Sprintf("[%s: %d games, %d win, %d lose]", p.name, p.games, p.wins, p.losses)
}

// Result summarises a game.
type Result struct {
	Rounds int
	Wins1  int
	Wins2  int
	Draws  int
}

// Play runs rounds hands between p1 and p2, writing each outcome and then
// the totals to w.
func Play(w io.Writer, p1, p2 *Player, rounds int) (Result, error) {
	if rounds < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeRounds, rounds)
	}
	res := Result{Rounds: rounds}
	for i := 0; i < rounds; i++ {
		h1, h2 := p1.NextHand(), p2.NextHand()

		var line string
		switch {
		case h1.StrongerThan(h2):
			p1.Win()
			p2.Lose()
			res.Wins1++
			line = "Winner:" + p1.String()
		case h2.StrongerThan(h1):
			p1.Lose()
			p2.Win()
			res.Wins2++
			line = "Winner:" + p2.String()
		default:
			p1.Even()
			p2.Even()
			res.Draws++
			line = "Even..."
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return res, err
		}
	}
	_, err := fmt.Fprintf(w, "Total result:\n%s\n%s\n", p1, p2)
	return res, err
}
