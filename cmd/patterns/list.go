package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlath-patterns/internal/demo"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range demo.All() {
				if _, err := fmt.Fprintf(w, "%-10s %s\n", d.Name, d.Summary); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
