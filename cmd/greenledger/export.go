package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON snapshot",
		Long: `Write the complete application state (transactions, categories,
settings) to a JSON document suitable for backup or migration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			snap := store.Export(ctx, time.Now())
			data, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding snapshot: %w", err)
			}

			if output == "" || output == "-" {
				fmt.Println(string(data))
				return nil
			}

			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			count := 0
			if snap.Transactions != nil {
				count = len(*snap.Transactions)
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", count, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (default stdout)")

	return cmd
}
