package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/tui/studio"
)

func newStudioCmd(flags *rootFlags) *cobra.Command {
	sel := &selectionFlags{}

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Launch the interactive avatar studio",
		Long:  `Launch the terminal studio to pick parts, preview the avatar and export it.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(cmd, flags, sel)
		},
	}
	sel.register(cmd)

	return cmd
}

func runStudio(cmd *cobra.Command, flags *rootFlags, selFlags *selectionFlags) error {
	app, err := appFrom(cmd, flags)
	if err != nil {
		return err
	}

	initial, err := selFlags.resolve(cmd)
	if err != nil {
		return err
	}

	log, err := app.studioLogger(flags.verbose)
	if err != nil {
		return err
	}
	log.Info("launching studio")

	m := studio.NewModel(studio.Options{
		Exporter: export.New(log),
		Export:   export.OptionsFromSettings(app.Settings.Export),
		Output:   app.Settings.Export.Output,
		Logger:   log,
		Initial:  &initial,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "studio execution failed")
		return fmt.Errorf("failed to run studio: %w", err)
	}

	log.Info("studio closed")
	return nil
}
