package main

import (
	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse transactions interactively",
		Long: `Open the full-screen transaction browser. Type / to search (the list
refilters as you pause typing), t/c/p to cycle filters, s/d to change
the sort, and arrow keys to move between pages.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return tui.Run(ctx, store)
		},
	}
}
