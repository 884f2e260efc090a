package main

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/alpaca/internal/avatar"
	apperrors "github.com/alexisbeaulieu97/alpaca/pkg/errors"
)

// selectionFlags describe a selection on the command line. The base is the
// share code, a random draw or the default; each --set is applied on top in
// order.
type selectionFlags struct {
	code   string
	random bool
	seed   uint64
	sets   []string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.code, "code", "", "Start from a share code")
	cmd.Flags().BoolVar(&f.random, "random", false, "Start from a random selection")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for --random (default: time based)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Pick an option, e.g. --set Hair=mohawk (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("code", "random")
}

func (f *selectionFlags) resolve(cmd *cobra.Command) (avatar.Selection, error) {
	if cmd.Flags().Changed("seed") && !f.random {
		return avatar.Selection{}, apperrors.NewValidationError("seed", "--seed only applies together with --random", nil)
	}

	sel := avatar.DefaultSelection()
	if f.code != "" {
		parsed, err := avatar.ParseSelection(f.code)
		if err != nil {
			return avatar.Selection{}, err
		}
		sel = parsed
	}

	if f.random {
		seed := f.seed
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}
		sel = avatar.Randomize(rand.New(rand.NewPCG(seed, seed)))
	}

	for _, assignment := range f.sets {
		next, err := avatar.Apply(sel, assignment)
		if err != nil {
			return avatar.Selection{}, err
		}
		sel = next
	}
	return sel, nil
}
