package demo_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvlath-patterns/internal/config"
	"github.com/katalvlaran/lvlath-patterns/internal/demo"
)

// quickEnv returns an Env with no delays and a temporary output dir.
func quickEnv(t *testing.T, w *bytes.Buffer) demo.Env {
	t.Helper()
	cfg := config.Default()
	cfg.Observer.Delay = 0
	cfg.Observer.Iterations = 5
	cfg.Proxy.HeavyJobDelay = 0
	cfg.Strategy.Rounds = 10
	cfg.Builder.OutputDir = t.TempDir()
	return demo.Env{W: w, Config: cfg}
}

func TestNames_CoverEveryPattern(t *testing.T) {
	want := []string{
		"adaptor", "bridge", "builder", "chain", "command", "composite",
		"decorator", "factory", "flyweight", "iterator", "mediator",
		"observer", "proxy", "singleton", "state", "strategy",
		"template", "visitor",
	}
	assert.Equal(t, want, demo.Names())
	assert.Len(t, demo.All(), len(want))
}

func TestRun_Every(t *testing.T) {
	for _, name := range demo.Names() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, demo.Run(context.Background(), name, quickEnv(t, &buf)))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestRun_Unknown(t *testing.T) {
	var buf bytes.Buffer
	err := demo.Run(context.Background(), "monad", quickEnv(t, &buf))
	require.ErrorIs(t, err, demo.ErrUnknownDemo)
	assert.Contains(t, err.Error(), `"monad"`)

	_, err = demo.Lookup("")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestRun_NilWriter(t *testing.T) {
	err := demo.Run(context.Background(), "adaptor", demo.Env{Config: config.Default()})
	assert.ErrorIs(t, err, demo.ErrNilWriter)
}

func TestRun_PanicBecomesError(t *testing.T) {
	var buf bytes.Buffer
	env := quickEnv(t, &buf)
	env.Config.Observer.Delay = -1 // bypasses Validate; WithDelay panics

	err := demo.Run(context.Background(), "observer", env)
	require.ErrorIs(t, err, demo.ErrDemoPanic)
	assert.Contains(t, err.Error(), "observer")
}

func TestChain_Output(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(context.Background(), "chain", quickEnv(t, &buf)))

	out := buf.String()
	assert.Contains(t, out, "[Trouble 0] is resolved by [Bob@LimitSupport].\n")
	assert.Contains(t, out, "[Trouble 429] is resolved by [Charlie@SpecialSupport].\n")
	assert.Contains(t, out, "[Trouble 462] cannot be resolved.\n")
	assert.Equal(t, 16, strings.Count(out, "\n"))
}

func TestBuilder_WritesHTML(t *testing.T) {
	var buf bytes.Buffer
	env := quickEnv(t, &buf)
	require.NoError(t, demo.Run(context.Background(), "builder", env))

	path := filepath.Join(env.Config.Builder.OutputDir, "Greeting.html")
	assert.Contains(t, buf.String(), path+" has been written.\n")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFlyweight_FontDirAndPool(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"1", "2", "3"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "big"+d+".txt"), []byte(d+"\n"), 0o644))
	}

	var buf bytes.Buffer
	env := quickEnv(t, &buf)
	env.Config.Flyweight.FontDir = dir
	env.Config.Flyweight.PoolSize = 2
	require.NoError(t, demo.Run(context.Background(), "flyweight", env))

	// "1212123" against a two-glyph pool: 1, 2 miss; 1, 2 hit twice; 3 evicts.
	assert.Equal(t, "1\n2\n1\n2\n1\n2\n3\n7 characters, 3 glyph loads\n", buf.String())
}

func TestFlyweight_MissingGlyph(t *testing.T) {
	var buf bytes.Buffer
	env := quickEnv(t, &buf)
	env.Config.Flyweight.FontDir = t.TempDir()

	err := demo.Run(context.Background(), "flyweight", env)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, demo.ErrDemoPanic)
}

func TestObserver_Metrics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(context.Background(), "observer", quickEnv(t, &buf)))

	out := buf.String()
	assert.Equal(t, 5, strings.Count(out, "DigitObserver:"))
	assert.Equal(t, 5, strings.Count(out, "GraphObserver:"))
	assert.Contains(t, out, "patterns_observer_updates_total 5\n")
	assert.Contains(t, out, "patterns_observer_last_number ")
}

func TestState_BothRenditionsAgree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(context.Background(), "state", quickEnv(t, &buf)))

	frame, machine, ok := strings.Cut(buf.String(), "-- state machine\n")
	require.True(t, ok)
	assert.Equal(t, frame, machine)
}

func TestStrategy_Rounds(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(context.Background(), "strategy", quickEnv(t, &buf)))

	out := buf.String()
	rounds := strings.Count(out, "Winner:") + strings.Count(out, "Even...")
	assert.Equal(t, 10, rounds)
	assert.Contains(t, out, "Total result:\n")
}

func TestRun_LogsStartAndFinish(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	var buf bytes.Buffer
	env := quickEnv(t, &buf)
	env.Logger = zap.New(core)

	require.NoError(t, demo.Run(context.Background(), "mediator", env))

	assert.Equal(t, 1, logs.FilterMessage("demo started").FilterField(zap.String("demo", "mediator")).Len())
	assert.Equal(t, 1, logs.FilterMessage("demo finished").Len())
	assert.NotZero(t, logs.FilterMessage("colleague toggled").Len())
}
