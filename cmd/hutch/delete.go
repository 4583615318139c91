package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "delete PATTERN",
		Aliases: []string{"d"},
		Short:   "Delete items",
		Long: `Delete removes items whose name contains PATTERN (case-insensitive).
Deleting more than one item requires --all. Deletion is a single undoable
step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			items, err := store.ItemsMatching(pattern)
			if err != nil {
				return err
			}

			if len(items) > 1 && !all {
				lines := make([]string, 0, len(items))
				for _, item := range items {
					lines = append(lines, "    "+item.String())
				}
				return fmt.Errorf("found multiple matching items (use --all to delete multiple items):\n%s",
					strings.Join(lines, "\n"))
			}

			if err := store.DeleteItems(items, fmt.Sprintf("delete items matching %s", pattern)); err != nil {
				return err
			}

			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", item)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "delete all matching items")
	return cmd
}
