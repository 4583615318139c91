package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

func newAddLocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add-location NAME NUM_BINS",
		Short: "Add a location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			numBins, err := types.ParseBinNumber(args[1])
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			// Silent on success.
			_, err = store.AddLocation(args[0], numBins)
			return err
		},
	}
}
