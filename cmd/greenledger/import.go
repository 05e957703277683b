package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/common"
	"github.com/greenledger/greenledger/internal/storage"
)

func importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON snapshot",
		Long: `Restore state from a snapshot produced by 'greenledger export'.
The snapshot may be partial: only the sections it carries are replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}

			var snap storage.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("decoding snapshot %s: %w", args[0], errors.Join(common.ErrCorruptData, err))
			}

			var sections []string
			txCount := 0
			if snap.Transactions != nil {
				txCount = len(*snap.Transactions)
				sections = append(sections, fmt.Sprintf("%d transactions", txCount))
			}
			if snap.Categories != nil {
				sections = append(sections, fmt.Sprintf("%d categories", len(*snap.Categories)))
			}
			if snap.Settings != nil {
				sections = append(sections, "settings")
			}
			if len(sections) == 0 {
				return fmt.Errorf("snapshot %s carries no data", args[0])
			}

			if dryRun {
				fmt.Println(cli.FormatInfo("Dry run; would import " + joinSections(sections)))
				return nil
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(ctx, snap); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Imported " + joinSections(sections)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be imported without writing")

	cmd.AddCommand(importOFXCmd())

	return cmd
}

func joinSections(sections []string) string {
	out := ""
	for i, s := range sections {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
