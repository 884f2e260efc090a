package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	configPath string
	verbose    bool

	app *AppContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "alpaca",
		Short:         "Alpaca builds avatar pictures from a fixed set of parts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := appFrom(cmd, flags)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if flags.app == nil {
				return nil
			}
			return flags.app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to draw the studio on.
			if len(args) == 0 && isTerminal(cmd.OutOrStdout()) {
				return runStudio(cmd, flags, &selectionFlags{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (YAML)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSVGCmd(flags))
	cmd.AddCommand(newOptionsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
