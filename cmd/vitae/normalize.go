package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/vitae/normalize"
	"github.com/tsawler/vitae/rules"
)

func normalizeCmd(a *app) *cobra.Command {
	var report bool

	cmd := &cobra.Command{
		Use:   "normalize [file]",
		Short: "Repair OCR text and print the normalized result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			n := normalize.NewWithConfig(rules.Standard(), a.cfg.NormalizerConfig())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, n.Normalize(raw))

			if report {
				fmt.Fprintln(cmd.ErrOrStderr(), n.Engine().Report())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&report, "report", false, "print rule statistics to stderr")
	return cmd
}
