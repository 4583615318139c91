package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

func newItemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "items [PATTERN]",
		Aliases: []string{"i"},
		Short:   "Show existing items",
		Long: `Items lists items sorted by location name, then bin number, then item
name. PATTERN filters by case-insensitive substring match on the name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			var items []types.Item
			if len(args) == 1 {
				items, err = store.ItemsMatching(args[0])
			} else {
				items, err = store.Items()
			}
			if err != nil {
				return err
			}

			for _, item := range items {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
}
