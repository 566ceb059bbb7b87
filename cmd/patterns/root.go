package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-patterns/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	seed       int64
	debug      bool
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:          "patterns",
		Short:        "Run design pattern demo scenarios",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file (defaults are used when omitted)")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", config.DefaultSeed, "seed for every random source; overrides the config file")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "development logging at debug level; overrides the config file")

	cmd.AddCommand(listCmd())
	cmd.AddCommand(runCmd(&flags))
	return cmd
}

// loadConfig reads the config file, if any, and applies flags that were
// set explicitly on the command line.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = flags.seed
	}
	if cmd.Flags().Changed("debug") {
		cfg.Log.Debug = flags.debug
	}
	return cfg, nil
}

// newLogger builds a development logger in debug mode and a production one
// otherwise. Both write to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		return zc.Build()
	}
	return zap.NewProductionConfig().Build()
}
