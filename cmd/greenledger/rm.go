package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
)

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, id := range args {
				removed, err := led.Delete(ctx, id)
				if err != nil {
					return err
				}
				if removed {
					fmt.Println(cli.FormatSuccess("Deleted " + id))
				} else {
					fmt.Println(cli.FormatWarning("No transaction with id " + id))
				}
			}
			return nil
		},
	}
}
