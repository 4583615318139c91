package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hutch/pkg/types"
)

// dumpPayload is the full store contents as one JSON document.
type dumpPayload struct {
	Locations []types.Location `json:"locations"`
	Items     []types.Item     `json:"items"`
}

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Dump database contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			locs, err := store.Locations()
			if err != nil {
				return err
			}
			items, err := store.Items()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dumpPayload{Locations: locs, Items: items})
		},
	}
}
