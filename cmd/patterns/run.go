package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-patterns/internal/demo"
)

// errNoDemos is returned by run when neither names nor --all are given.
var errNoDemos = errors.New("patterns: name at least one demo or pass --all")

func runCmd(flags *globalFlags) *cobra.Command {
	var all bool

	c := &cobra.Command{
		Use:   "run [names...]",
		Short: "Run one or more demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			switch {
			case all && len(args) > 0:
				return fmt.Errorf("patterns: --all takes no names, got %v", args)
			case all:
				names = demo.Names()
			case len(args) == 0:
				return errNoDemos
			}
			// Unknown names fail before anything runs.
			for _, name := range names {
				if _, err := demo.Lookup(name); err != nil {
					return err
				}
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Log.Debug)
			if err != nil {
				return fmt.Errorf("patterns: logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			env := demo.Env{W: cmd.OutOrStdout(), Config: cfg, Logger: logger}
			for i, name := range names {
				sep := ""
				if i > 0 {
					sep = "\n"
				}
				if _, err := fmt.Fprintf(env.W, "%s=== %s ===\n", sep, name); err != nil {
					return err
				}
				if err := demo.Run(cmd.Context(), name, env); err != nil {
					logger.Error("demo failed", zap.String("demo", name), zap.Error(err))
					return err
				}
			}
			return nil
		},
	}

	c.Flags().BoolVar(&all, "all", false, "Run every demo in list order")
	return c
}
