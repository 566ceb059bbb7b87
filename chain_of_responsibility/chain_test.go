package chain_of_responsibility_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	cor "github.com/katalvlaran/lvlath-patterns/chain_of_responsibility"
)

// wantLines is the outcome for troubles 0, 33, ..., 495 through the
// Alice → Bob → Charlie → Diana → Elmo → Fred chain.
var wantLines = []string{
	"[Trouble 0] is resolved by [Bob@LimitSupport].",
	"[Trouble 33] is resolved by [Bob@LimitSupport].",
	"[Trouble 66] is resolved by [Bob@LimitSupport].",
	"[Trouble 99] is resolved by [Bob@LimitSupport].",
	"[Trouble 132] is resolved by [Diana@LimitSupport].",
	"[Trouble 165] is resolved by [Diana@LimitSupport].",
	"[Trouble 198] is resolved by [Diana@LimitSupport].",
	"[Trouble 231] is resolved by [Elmo@OddSupport].",
	"[Trouble 264] is resolved by [Fred@LimitSupport].",
	"[Trouble 297] is resolved by [Elmo@OddSupport].",
	"[Trouble 330] cannot be resolved.",
	"[Trouble 363] is resolved by [Elmo@OddSupport].",
	"[Trouble 396] cannot be resolved.",
	"[Trouble 429] is resolved by [Charlie@SpecialSupport].",
	"[Trouble 462] cannot be resolved.",
	"[Trouble 495] is resolved by [Elmo@OddSupport].",
}

func expected() string {
	var b bytes.Buffer
	for _, l := range wantLines {
		b.WriteString(l + "\n")
	}
	return b.String()
}

// ChainSuite exercises both renditions against the same scenario.
type ChainSuite struct {
	suite.Suite
}

func buildInterfaceChain() cor.Support {
	alice := cor.NewNoSupport("Alice")
	alice.
		SetNext(cor.NewLimitSupport("Bob", 100)).
		SetNext(cor.NewSpecialSupport("Charlie", 429)).
		SetNext(cor.NewLimitSupport("Diana", 200)).
		SetNext(cor.NewOddSupport("Elmo")).
		SetNext(cor.NewLimitSupport("Fred", 300))
	return alice
}

func buildClosedChain() *cor.Handler {
	alice := cor.OfNo("Alice")
	alice.
		SetNext(cor.OfLimit("Bob", 100)).
		SetNext(cor.OfSpecial("Charlie", 429)).
		SetNext(cor.OfLimit("Diana", 200)).
		SetNext(cor.OfOdd("Elmo")).
		SetNext(cor.OfLimit("Fred", 300))
	return alice
}

func (s *ChainSuite) TestInterfaceChain() {
	head := buildInterfaceChain()
	var buf bytes.Buffer
	for i := 0; i < 500; i += 33 {
		_, err := cor.Handle(&buf, head, cor.Trouble{Number: i})
		require.NoError(s.T(), err)
	}
	require.Equal(s.T(), expected(), buf.String())
}

func (s *ChainSuite) TestClosedChain() {
	head := buildClosedChain()
	var buf bytes.Buffer
	for i := 0; i < 500; i += 33 {
		_, err := head.Handle(&buf, cor.Trouble{Number: i})
		require.NoError(s.T(), err)
	}
	require.Equal(s.T(), expected(), buf.String())
}

func (s *ChainSuite) TestResolverReturned() {
	got, err := cor.Handle(io.Discard, buildInterfaceChain(), cor.Trouble{Number: 429})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "[Charlie@SpecialSupport]", got.String())

	got, err = cor.Handle(io.Discard, buildInterfaceChain(), cor.Trouble{Number: 330})
	require.NoError(s.T(), err)
	require.Nil(s.T(), got)

	h, err := buildClosedChain().Handle(io.Discard, cor.Trouble{Number: 231})
	require.NoError(s.T(), err)
	require.Equal(s.T(), cor.KindOdd, h.Kind())
}

func (s *ChainSuite) TestNilHead() {
	_, err := cor.Handle(io.Discard, nil, cor.Trouble{})
	require.ErrorIs(s.T(), err, cor.ErrNilSupport)

	var h *cor.Handler
	_, err = h.Handle(io.Discard, cor.Trouble{})
	require.ErrorIs(s.T(), err, cor.ErrNilSupport)
}

func (s *ChainSuite) TestCycleDetected() {
	a := cor.NewNoSupport("A")
	b := cor.NewNoSupport("B")
	a.SetNext(b).SetNext(a)
	_, err := cor.Handle(io.Discard, a, cor.Trouble{Number: 1})
	require.ErrorIs(s.T(), err, cor.ErrCycle)

	x := cor.OfNo("X")
	x.SetNext(x)
	_, err = x.Handle(io.Discard, cor.Trouble{Number: 1})
	require.ErrorIs(s.T(), err, cor.ErrCycle)
}

// tagged is a value-type Support whose comparability depends on tag.
type tagged struct{ tag any }

func (tagged) String() string { return "[tagged]" }
func (tagged) Resolve(cor.Trouble) bool { return false }
func (tagged) Next() cor.Support { return nil }
func (t tagged) SetNext(cor.Support) cor.Support { return t }

func (s *ChainSuite) TestNotComparableSupport() {
	_, err := cor.Handle(io.Discard, tagged{tag: []int{1}}, cor.Trouble{Number: 1})
	require.ErrorIs(s.T(), err, cor.ErrNotComparable)
	require.Contains(s.T(), err.Error(), "chain_of_responsibility: ")

	var buf bytes.Buffer
	_, err = cor.Handle(&buf, tagged{tag: 1}, cor.Trouble{Number: 1})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "[Trouble 1] cannot be resolved.\n", buf.String())
}

func (s *ChainSuite) TestErrorPrefix() {
	require.Equal(s.T(), "chain_of_responsibility: support is nil", cor.ErrNilSupport.Error())
	require.Equal(s.T(), "chain_of_responsibility: handler chain contains a cycle", cor.ErrCycle.Error())
}

func (s *ChainSuite) TestHandOffsLogged() {
	core, logs := observer.New(zapcore.DebugLevel)
	c := cor.NewChain(buildInterfaceChain(), cor.WithLogger(zap.New(core)))

	_, err := c.Handle(io.Discard, cor.Trouble{Number: 132})
	require.NoError(s.T(), err)

	// Alice, Bob and Charlie pass; Diana resolves.
	require.Equal(s.T(), 3, logs.FilterMessage("trouble passed on").Len())
	resolved := logs.FilterMessage("trouble resolved").All()
	require.Len(s.T(), resolved, 1)
	require.Equal(s.T(), "[Diana@LimitSupport]", resolved[0].ContextMap()["by"])
}

func TestChainSuite(t *testing.T) {
	suite.Run(t, new(ChainSuite))
}
