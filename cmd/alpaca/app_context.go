package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/config"
	"github.com/alexisbeaulieu97/alpaca/internal/export"
	"github.com/alexisbeaulieu97/alpaca/internal/logger"
)

// AppContext bundles the settings and services a command runs with.
type AppContext struct {
	Settings config.Settings
	Logger   *logger.Logger
	Exporter *export.Exporter

	closers []io.Closer
}

// newAppContext loads settings and builds a logger writing to w.
func newAppContext(flags *rootFlags, w io.Writer) (*AppContext, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := settings.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: settings.Log.Human, Writer: w})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &AppContext{
		Settings: settings,
		Logger:   log,
		Exporter: export.New(log),
	}, nil
}

// studioLogger returns a logger that does not write to the terminal. It
// appends to the configured log file, or discards everything.
func (a *AppContext) studioLogger(verbose bool) (*logger.Logger, error) {
	if a.Settings.Log.File == "" {
		return logger.Nop(), nil
	}

	f, err := os.OpenFile(a.Settings.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.closers = append(a.closers, f)

	level := a.Settings.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Writer: f})
}

// Close releases files opened on behalf of commands.
func (a *AppContext) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func appFrom(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	if flags.app != nil {
		return flags.app, nil
	}
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	flags.app = app
	return app, nil
}
