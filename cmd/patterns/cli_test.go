package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlath-patterns/internal/demo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeConfig writes a config with no delays and a temporary output dir.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	body := "seed: 42\n" +
		"strategy:\n  rounds: 5\n" +
		"observer:\n  iterations: 3\n  delay: 0s\n" +
		"proxy:\n  heavy_job_delay: 0s\n" +
		"builder:\n  output_dir: " + dir + "\n" +
		extra
	path := filepath.Join(dir, "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(demo.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "adaptor "))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "visitor "))
}

func TestRun_One(t *testing.T) {
	out, err := execute(t, "run", "adaptor")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "=== adaptor ===\n(Hello)\n*Hello*\n"))
}

func TestRun_All(t *testing.T) {
	out, err := execute(t, "run", "--all", "--config", writeConfig(t, ""))
	require.NoError(t, err)
	for _, name := range demo.Names() {
		assert.Contains(t, out, "=== "+name+" ===\n")
	}
}

func TestRun_ArgumentErrors(t *testing.T) {
	_, err := execute(t, "run")
	assert.ErrorIs(t, err, errNoDemos)

	_, err = execute(t, "run", "--all", "adaptor")
	assert.Error(t, err)

	out, err := execute(t, "run", "adaptor", "monad")
	assert.ErrorIs(t, err, demo.ErrUnknownDemo)
	assert.Empty(t, out, "nothing runs when a name is unknown")

	_, err = execute(t, "run", "adaptor", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "log:\n  debug: true\n")

	parse := func(args ...string) (*cobra.Command, *globalFlags) {
		flags := &globalFlags{}
		cmd := &cobra.Command{Use: "patterns"}
		cmd.Flags().StringVar(&flags.configPath, "config", "", "")
		cmd.Flags().Int64Var(&flags.seed, "seed", 1, "")
		cmd.Flags().BoolVar(&flags.debug, "debug", false, "")
		require.NoError(t, cmd.ParseFlags(args))
		return cmd, flags
	}

	cmd, flags := parse("--config", path)
	cfg, err := loadConfig(cmd, flags)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Log.Debug)

	cmd, flags = parse("--config", path, "--seed", "7", "--debug=false")
	cfg, err = loadConfig(cmd, flags)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.False(t, cfg.Log.Debug)
	assert.Equal(t, 5, cfg.Strategy.Rounds)
}

func TestNewLogger(t *testing.T) {
	for _, debug := range []bool{true, false} {
		l, err := newLogger(debug)
		require.NoError(t, err)
		assert.Equal(t, debug, l.Core().Enabled(zapcore.DebugLevel))
	}
}
