package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUndoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "undo",
		Aliases: []string{"u"},
		Short:   "Undo the last action",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			description, ok, err := store.Undo()
			if err != nil {
				return err
			}

			// An empty journal is a reported no-op, never an error.
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to undo")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Undid: %s\n", description)
			return nil
		},
	}
}
