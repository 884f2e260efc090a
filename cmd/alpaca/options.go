package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
)

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options [category]",
		Short: "List categories and their options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := avatar.Categories()
			if len(args) == 1 {
				c, err := avatar.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []avatar.Category{c}
			}
			return printOptions(cmd.OutOrStdout(), categories)
		},
	}

	return cmd
}

func printOptions(w io.Writer, categories []avatar.Category) error {
	defaults := avatar.DefaultSelection()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tID\tLABEL\tDEFAULT")
	for _, c := range categories {
		for _, opt := range avatar.OptionsFor(c) {
			mark := ""
			if defaults.Get(c) == opt.ID {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c, opt.ID, opt.Label, mark)
		}
	}
	return tw.Flush()
}
