package observer_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	obs "github.com/katalvlaran/lvlath-patterns/observer"
)

func TestRandomNumberGenerator_NotifiesInOrder(t *testing.T) {
	var buf bytes.Buffer
	g := obs.NewRandomNumberGenerator(obs.WithSeed(42))
	require.NoError(t, g.AddObserver(obs.NewDigitObserver(&buf)))
	require.NoError(t, g.AddObserver(obs.NewGraphObserver(&buf)))
	require.NoError(t, g.Execute(context.Background()))

	// Replay the same seed to know which numbers were drawn.
	r := rand.New(rand.NewSource(42))
	var want strings.Builder
	last := 0
	for i := 0; i < obs.DefaultIterations; i++ {
		last = r.Intn(50)
		fmt.Fprintf(&want, "DigitObserver:%d\nGraphObserver:%s\n", last, strings.Repeat("*", last))
	}
	assert.Equal(t, want.String(), buf.String())
	assert.Equal(t, last, g.Number())
}

func TestRandomNumberGenerator_Range(t *testing.T) {
	var seen []int
	g := obs.NewRandomNumberGenerator(obs.WithSeed(7), obs.WithIterations(500))
	require.NoError(t, g.AddObserver(obs.FuncVariant(func(n int) error {
		seen = append(seen, n)
		return nil
	})))
	require.NoError(t, g.Execute(context.Background()))

	require.Len(t, seen, 500)
	for _, n := range seen {
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 50)
	}
}

func TestIncrementalNumberGenerator(t *testing.T) {
	var buf bytes.Buffer
	g, err := obs.NewIncrementalNumberGenerator(10, 50, 10)
	require.NoError(t, err)
	require.NoError(t, g.AddObserver(obs.NewDigitObserver(&buf)))
	require.NoError(t, g.Execute(context.Background()))

	assert.Equal(t, "DigitObserver:10\nDigitObserver:20\nDigitObserver:30\nDigitObserver:40\n", buf.String())
	assert.Equal(t, 40, g.Number())

	_, err = obs.NewIncrementalNumberGenerator(0, 10, 0)
	require.ErrorIs(t, err, obs.ErrBadStep)
}

type funcObserver func()

func (funcObserver) Update(context.Context, obs.NumberGenerator) error { return nil }

func TestAddDeleteObserver(t *testing.T) {
	var buf bytes.Buffer
	g, err := obs.NewIncrementalNumberGenerator(1, 2, 1)
	require.NoError(t, err)

	d1 := obs.NewDigitObserver(&buf)
	d2 := obs.NewDigitObserver(&buf)
	require.NoError(t, g.AddObserver(d1))
	require.NoError(t, g.AddObserver(d2))

	// Equal content, different identity: only d1 goes.
	require.NoError(t, g.DeleteObserver(d1))
	assert.Equal(t, 1, g.Observers())
	require.ErrorIs(t, g.DeleteObserver(d1), obs.ErrObserverNotFound)

	require.ErrorIs(t, g.AddObserver(nil), obs.ErrNilObserver)
	require.ErrorIs(t, g.AddObserver(funcObserver(func() {})), obs.ErrNotComparable)
	require.ErrorIs(t, g.DeleteObserver(funcObserver(func() {})), obs.ErrObserverNotFound)

	require.NoError(t, g.Execute(context.Background()))
	assert.Equal(t, "DigitObserver:1\n", buf.String())
}

// holder is a comparable struct type whose field may hold a
// non-comparable dynamic value.
type holder struct{ v any }

func (holder) Update(context.Context, obs.NumberGenerator) error { return nil }

func TestAddObserver_RejectsNonComparableValue(t *testing.T) {
	g := obs.NewRandomNumberGenerator()
	require.ErrorIs(t, g.AddObserver(holder{v: []int{1}}), obs.ErrNotComparable)
	require.ErrorIs(t, g.DeleteObserver(holder{v: []int{1}}), obs.ErrObserverNotFound)

	// The same type with a comparable value is fine.
	require.NoError(t, g.AddObserver(holder{v: 1}))
	require.NoError(t, g.DeleteObserver(holder{v: 1}))
}

func TestDeleteObserver_DuringUpdate(t *testing.T) {
	g, err := obs.NewIncrementalNumberGenerator(1, 3, 1)
	require.NoError(t, err)

	var first, second, third int
	var quitter *obs.Variant
	quitter = obs.FuncVariant(func(int) error {
		first++
		return g.DeleteObserver(quitter)
	})
	require.NoError(t, g.AddObserver(quitter))
	require.NoError(t, g.AddObserver(obs.FuncVariant(func(int) error { second++; return nil })))
	require.NoError(t, g.AddObserver(obs.FuncVariant(func(int) error { third++; return nil })))

	require.NoError(t, g.Execute(context.Background()))

	// Round 1 reaches all three; round 2 only the two that stayed.
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.Equal(t, 2, third)
	assert.Equal(t, 2, g.Observers())
}

func TestIncrementalNumberGenerator_StopsAtMaxInt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []int
	g, err := obs.NewIncrementalNumberGenerator(math.MaxInt-5, math.MaxInt, 4)
	require.NoError(t, err)
	require.NoError(t, g.AddObserver(obs.FuncVariant(func(n int) error {
		seen = append(seen, n)
		if len(seen) > 10 {
			cancel()
		}
		return nil
	})))

	require.NoError(t, g.Execute(ctx))
	assert.Equal(t, []int{math.MaxInt - 5, math.MaxInt - 1}, seen)
}

func TestObserverErrorStopsExecute(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	g := obs.NewRandomNumberGenerator()
	require.NoError(t, g.AddObserver(obs.FuncVariant(func(int) error {
		calls++
		return boom
	})))
	require.ErrorIs(t, g.Execute(context.Background()), boom)
	assert.Equal(t, 1, calls)
}

func TestDelayHonoursContext(t *testing.T) {
	g := obs.NewRandomNumberGenerator()
	require.NoError(t, g.AddObserver(obs.NewGraphObserver(&bytes.Buffer{}, obs.WithDelay(time.Hour))))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := g.Execute(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestExecute_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	g := obs.NewRandomNumberGenerator()
	require.NoError(t, g.AddObserver(obs.NewDigitObserver(&buf)))
	require.ErrorIs(t, g.Execute(ctx), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestVariant_MatchesInterfaceObservers(t *testing.T) {
	var a, b bytes.Buffer
	g, err := obs.NewIncrementalNumberGenerator(3, 6, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddObserver(obs.NewDigitObserver(&a)))
	require.NoError(t, g.AddObserver(obs.NewGraphObserver(&a)))
	require.NoError(t, g.AddObserver(obs.DigitVariant(&b)))
	require.NoError(t, g.AddObserver(obs.GraphVariant(&b)))
	require.NoError(t, g.Execute(context.Background()))

	assert.Equal(t, "DigitObserver:3\nGraphObserver:***\nDigitObserver:5\nGraphObserver:*****\n", a.String())
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, obs.KindGraph, obs.GraphVariant(&b).Kind())
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := obs.NewMetricsObserver(reg, "incremental")

	g, err := obs.NewIncrementalNumberGenerator(0, 30, 7)
	require.NoError(t, err)
	require.NoError(t, g.AddObserver(m))
	require.NoError(t, g.Execute(context.Background()))

	assert.Equal(t, float64(28), testutil.ToFloat64(m.Last()))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.Updates()))
	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRegistrationLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	g := obs.NewRandomNumberGenerator(obs.WithLogger(zap.New(core)))
	d := obs.NewDigitObserver(&bytes.Buffer{})
	require.NoError(t, g.AddObserver(d))
	require.NoError(t, g.DeleteObserver(d))

	require.Equal(t, 1, logs.FilterMessage("observer added").Len())
	entry := logs.FilterMessage("observer deleted").All()[0]
	assert.Equal(t, "*observer.DigitObserver", entry.ContextMap()["type"])
	assert.Equal(t, int64(0), entry.ContextMap()["count"])
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { obs.WithRand(nil) })
	assert.Panics(t, func() { obs.WithIterations(-1) })
	assert.Panics(t, func() { obs.WithDelay(-time.Second) })
	assert.Panics(t, func() { obs.WithLogger(nil) })
}
