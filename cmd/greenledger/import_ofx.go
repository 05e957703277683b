package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/ledger"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	var (
		expenseCategory string
		incomeCategory  string
		dryRun          bool
	)

	cmd := &cobra.Command{
		Use:   "ofx <file>...",
		Short: "Import transactions from OFX/QFX bank exports",
		Long: `Parse one or more OFX/QFX statement files and record their entries
as transactions. Entries already recorded (same date, amount, and
description) are skipped, and repeated statement lines are collapsed
by their bank id. Glob patterns are accepted.

Statement lines without a recognizable category use the fallback
categories from --expense-category and --income-category.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := cli.NewInterruptHandler(os.Stdout)
			ctx := handler.HandleInterrupts(cmd.Context())

			files, err := expandGlobs(args)
			if err != nil {
				return err
			}

			parser := ofx.NewParser()
			var entries []ofx.Entry
			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				parsed, err := parser.ParseFile(ctx, f)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("parsing %s: %w", file, err)
				}
				entries = append(entries, parsed...)
			}

			if len(entries) == 0 {
				fmt.Println(cli.FormatWarning("No entries found in the given files."))
				return nil
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cats := store.Categories(ctx)
			fresh, skipped := dedupEntries(entries, existingKeys(store.Transactions(ctx)))

			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetWriter(os.Stdout),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing entries..."),
			)
			_ = bar.Add(skipped)

			var inputs []ledger.Input
			for _, entry := range fresh {
				_ = bar.Add(1)

				category := entry.CategoryHint
				if _, ok := model.FindCategory(cats, category); !ok {
					if entry.Type == model.TypeIncome {
						category = incomeCategory
					} else {
						category = expenseCategory
					}
				}

				inputs = append(inputs, ledger.Input{
					Type:        entry.Type,
					Amount:      entry.Amount,
					Category:    category,
					Description: entry.Description,
					Date:        entry.Date,
				})
			}
			fmt.Println()

			if handler.WasInterrupted() {
				return ctx.Err()
			}
			if len(inputs) == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Nothing new to import (%d duplicates skipped).", skipped)))
				return nil
			}
			if dryRun {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run; would import %d transactions (%d duplicates skipped).", len(inputs), skipped)))
				return nil
			}

			added, err := led.AddBatch(ctx, inputs)
			if err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d duplicates skipped).", len(added), skipped)))
			return nil
		},
	}

	cmd.Flags().StringVar(&expenseCategory, "expense-category", "shopping", "fallback category for uncategorized expenses")
	cmd.Flags().StringVar(&incomeCategory, "income-category", "salary", "fallback category for uncategorized income")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and report without writing")

	return cmd
}

func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Not a pattern; treat as a literal path so open reports
			// the real error.
			matches = []string{pattern}
		}
		files = append(files, matches...)
	}
	return files, nil
}

// dedupEntries drops statement lines already recorded and duplicates
// within the batch. Within a batch the bank's FITID tells apart entries
// whose surface attributes collide, such as two identical purchases on
// the same day; entries without a FITID fall back to the surface key.
// Stored transactions keep no bank ids, so the check against existing
// data uses the surface key alone.
func dedupEntries(entries []ofx.Entry, stored map[string]bool) ([]ofx.Entry, int) {
	batch := make(map[string]bool, len(entries))
	var fresh []ofx.Entry
	skipped := 0
	for _, entry := range entries {
		surface := entryKey(entry.Date, string(entry.Type), entry.Amount.String(), entry.Description)
		batchKey := entry.SourceID
		if batchKey == "" {
			batchKey = surface
		}
		if batch[batchKey] || stored[surface] {
			skipped++
			continue
		}
		batch[batchKey] = true
		fresh = append(fresh, entry)
	}
	return fresh, skipped
}

func existingKeys(txns []model.Transaction) map[string]bool {
	seen := make(map[string]bool, len(txns))
	for _, tx := range txns {
		seen[entryKey(tx.Date, string(tx.Type), tx.Amount.String(), tx.Description)] = true
	}
	return seen
}

func entryKey(date model.Date, txType, amount, description string) string {
	return date.String() + "|" + txType + "|" + amount + "|" + description
}
