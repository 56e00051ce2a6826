package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/vitae/classify"
	"github.com/tsawler/vitae/model"
)

func classifyCmd(a *app) *cobra.Command {
	var header string
	var first bool
	var evidence bool

	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify one section from its header and content",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// With only a header there is nothing to read
			content := ""
			if len(args) > 0 || header == "" {
				var err error
				if content, err = readInput(cmd, args); err != nil {
					return err
				}
			}

			c := classify.NewWithConfig(a.cfg.ClassifierConfig())
			st, confidence := c.Classify(header, content, first)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\t%.2f\n", st, confidence)

			if evidence {
				ev := c.Evidence(content, first)
				for _, t := range model.SectionTypes {
					if score, ok := ev[t]; ok && score > 0 {
						fmt.Fprintf(out, "  %-16s %.2f\n", t, score)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&header, "header", "", "the section header line")
	cmd.Flags().BoolVar(&first, "first", false, "treat the section as the first in the document")
	cmd.Flags().BoolVar(&evidence, "evidence", false, "print the content evidence scores")
	return cmd
}
