package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/internal/inventory"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add LOCATION[/BIN] NAME [SIZE]",
		Aliases: []string{"a"},
		Short:   "Add an item",
		Long: `Add creates an item in a location. When BIN is omitted the item goes to
the least-loaded bin, ties broken by the lowest bin number. SIZE is one of
S, M, L, X and defaults to S.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := types.ParseTarget(args[0])
			if err != nil {
				return err
			}

			size := types.SizeSmall
			if len(args) == 3 {
				size, err = types.ParseSize(args[2])
				if err != nil {
					return err
				}
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

			item, err := inventory.AddItem(store, loc, target.Bin, args[1], size)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), item)
			return nil
		},
	}
}
