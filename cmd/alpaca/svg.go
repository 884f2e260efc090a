package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/layers"
)

func newSVGCmd(flags *rootFlags) *cobra.Command {
	sel := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Print the avatar as an SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd, flags)
			if err != nil {
				return err
			}

			selection, err := sel.resolve(cmd)
			if err != nil {
				return err
			}

			app.Logger.With("selection", selection.String()).Debug("serializing")
			_, err = cmd.OutOrStdout().Write(export.Serialize(layers.Compose(selection)))
			return err
		},
	}
	sel.register(cmd)

	return cmd
}
