package bridge_test

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-patterns/bridge"
)

const helloBox = "+-----+\n|Hello|\n+-----+\n"

func TestStringImpl_WidthCountsRunes(t *testing.T) {
	assert.Equal(t, 5, bridge.NewStringImpl("Hello").Width())
	assert.Equal(t, 3, bridge.NewStringImpl("日本語").Width())
	assert.Equal(t, 0, bridge.NewStringImpl("").Width())
}

func TestDisplay_AllRenditionsAgree(t *testing.T) {
	cases := map[string]bridge.Display{
		"default":       bridge.NewDisplay(bridge.NewStringImpl("Hello")),
		"count":         bridge.NewCountDisplay(bridge.NewStringImpl("Hello")),
		"variant":       bridge.OfDefault(bridge.NewStringImpl("Hello")),
		"variant-count": bridge.OfCount(bridge.NewStringImpl("Hello")),
		"generic":       bridge.NewGenericDisplay(bridge.NewStringImpl("Hello")),
		"generic-count": bridge.NewGenericCountDisplay(bridge.NewStringImpl("Hello")),
	}
	for name, d := range cases {
		d := d
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, d.Display(&buf))
			assert.Equal(t, helloBox, buf.String())
		})
	}
}

func TestMultiDisplay(t *testing.T) {
	want := "+--+\n" + strings.Repeat("|Hi|\n", 3) + "+--+\n"

	var a, b, c bytes.Buffer
	require.NoError(t, bridge.NewCountDisplay(bridge.NewStringImpl("Hi")).MultiDisplay(&a, 3))

	cv, ok := bridge.OfCount(bridge.NewStringImpl("Hi")).AsCount()
	require.True(t, ok)
	require.NoError(t, cv.MultiDisplay(&b, 3))

	require.NoError(t, bridge.NewGenericCountDisplay(bridge.NewStringImpl("Hi")).MultiDisplay(&c, 3))

	assert.Equal(t, want, a.String())
	assert.Equal(t, want, b.String())
	assert.Equal(t, want, c.String())
}

func TestMultiDisplay_ZeroAndNegative(t *testing.T) {
	var buf bytes.Buffer
	d := bridge.NewCountDisplay(bridge.NewStringImpl("Hi"))

	require.NoError(t, d.MultiDisplay(&buf, 0))
	assert.Equal(t, "+--+\n+--+\n", buf.String())

	require.ErrorIs(t, d.MultiDisplay(io.Discard, -1), bridge.ErrNegativeTimes)
	require.ErrorIs(t, bridge.NewGenericCountDisplay(bridge.NewStringImpl("Hi")).MultiDisplay(io.Discard, -1), bridge.ErrNegativeTimes)
}

func TestVariant_AsCountOnDefault(t *testing.T) {
	_, ok := bridge.OfDefault(bridge.NewStringImpl("x")).AsCount()
	assert.False(t, ok)
	assert.Equal(t, bridge.KindCount, bridge.OfCount(bridge.NewStringImpl("x")).Kind())
}

func TestNilAndUnknown(t *testing.T) {
	require.ErrorIs(t, bridge.NewDisplay(nil).Display(io.Discard), bridge.ErrNilImpl)
	require.ErrorIs(t, bridge.OfDefault(nil).Display(io.Discard), bridge.ErrNilImpl)
	require.ErrorIs(t, bridge.OfCount(nil).Display(io.Discard), bridge.ErrNilImpl)

	var zero bridge.Variant
	require.ErrorIs(t, zero.Display(io.Discard), bridge.ErrUnknownKind)
}

func TestRandomDisplay_Deterministic(t *testing.T) {
	// 1) Two displays with the same seed draw the same counts.
	d1 := bridge.NewRandomCountDisplay(bridge.NewStringImpl("R"), bridge.WithSeed(7))
	d2 := bridge.NewRandomCountDisplay(bridge.NewStringImpl("R"), bridge.WithSeed(7))
	for i := 0; i < 5; i++ {
		var b1, b2 bytes.Buffer
		n1, err := d1.RandomDisplay(&b1, 6)
		require.NoError(t, err)
		n2, err := d2.RandomDisplay(&b2, 6)
		require.NoError(t, err)

		// 2) The count is in range and matches the number of body lines.
		require.Equal(t, n1, n2)
		require.GreaterOrEqual(t, n1, 0)
		require.Less(t, n1, 6)
		assert.Equal(t, n1, strings.Count(b1.String(), "|R|"))
		assert.Equal(t, b1.String(), b2.String())
	}

	// 3) Invalid bound.
	_, err := d1.RandomDisplay(io.Discard, 0)
	require.ErrorIs(t, err, bridge.ErrNegativeTimes)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { bridge.WithRand(nil) })
	assert.NotPanics(t, func() { bridge.WithRand(rand.New(rand.NewSource(1))) })
}
