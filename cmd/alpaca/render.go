package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/layers"
)

type renderOptions struct {
	output  string
	size    int
	format  string
	quality int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}
	sel := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export an avatar image without the studio",
		Example: `  alpaca render --set Hair=mohawk --set Eyes=winky -o mohawk.png
  alpaca render --random --seed 7 --size 256 --format jpeg -o random.jpg
  alpaca render --code "Fur=#6B4F3A;Clothes=scarf"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFrom(cmd, flags)
			if err != nil {
				return err
			}

			selection, err := sel.resolve(cmd)
			if err != nil {
				return err
			}

			exportOpts, path := opts.resolve(cmd, app)

			log := app.Logger.WithFields(map[string]any{"path": path, "selection": selection.String()})
			log.Debug("rendering")

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if err := app.Exporter.ExportFile(ctx, layers.Compose(selection), exportOpts, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d %s)\n", path, exportOpts.Side, exportOpts.Side, exportOpts.Format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default from settings)")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 0, "Edge length in pixels (default from settings)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "png, jpeg, bmp or tiff (default from extension or settings)")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "JPEG quality 1-100 (default from settings)")
	sel.register(cmd)

	return cmd
}

// resolve merges flags over settings. The format comes from --format, then
// the output extension, then settings.
func (o *renderOptions) resolve(cmd *cobra.Command, app *AppContext) (export.Options, string) {
	opts := export.OptionsFromSettings(app.Settings.Export)

	path := app.Settings.Export.Output
	if o.output != "" {
		path = o.output
	}

	if cmd.Flags().Changed("size") {
		opts.Side = o.size
	}
	if cmd.Flags().Changed("quality") {
		opts.Quality = o.quality
	}

	switch {
	case o.format != "":
		// Unknown names pass through so the exporter reports them.
		opts.Format = o.format
		if format, ok := export.ParseFormat(o.format); ok {
			opts.Format = format
		}
	case export.FormatFromPath(path) != "":
		opts.Format = export.FormatFromPath(path)
	}
	return opts, path
}
