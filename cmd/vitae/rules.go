package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/vitae/rules"
)

func rulesCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the standard normalization rules in pipeline order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := rules.Standard()

			var filter *rules.Category
			if category != "" {
				c, err := rules.ParseCategory(category)
				if err != nil {
					return err
				}
				filter = &c
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tNAME\tDESCRIPTION")
			for _, c := range rules.PipelineOrder {
				if filter != nil && c != *filter {
					continue
				}
				for _, r := range engine.Rules() {
					if r.Category == c {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", c, r.Name, r.Description)
					}
				}
			}
			a.logger.Debug("listed rules", "total", engine.Len())
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list rules in this category")
	return cmd
}
