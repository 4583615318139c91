package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/internal/inventory"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

func newQuickaddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "quickadd LOCATION[/BIN]",
		Aliases: []string{"qa"},
		Short:   "Quickly add several items to a location",
		Long: `Quickadd reads one item per line from standard input until end of input.
Each line is "<name> [<size>]"; size defaults to S. When BIN is given every
item goes to that bin, otherwise each item is auto-allocated in turn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := types.ParseTarget(args[0])
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			loc, err := a.resolveLocation(store, target.Location)
			if err != nil {
				return err
			}

			// Validate a fixed bin once, before reading any input.
			if target.Bin != nil {
				if _, err := inventory.ChooseBin(loc, target.Bin, nil); err != nil {
					return err
				}
			}

			ing := inventory.NewIngestor(store, loc, target.Bin, cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err = ing.Run(cmd.InOrStdin())
			return err
		},
	}
}
