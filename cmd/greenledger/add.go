package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/ledger"
	"github.com/greenledger/greenledger/internal/model"
)

func addCmd() *cobra.Command {
	var (
		txType      string
		date        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record a transaction",
		Long: `Record a new income or expense transaction.

Examples:
  greenledger add 85.50 food --desc "Grocery Shopping"
  greenledger add 3200 salary --type income --date 2024-09-01`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := model.ParseAmount(args[0])
			if err != nil {
				return err
			}

			when := model.DateOf(time.Now())
			if date != "" {
				when, err = model.ParseDate(date)
				if err != nil {
					return err
				}
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tx, err := led.Add(ctx, ledger.Input{
				Type:        model.TransactionType(txType),
				Amount:      amount,
				Category:    args[1],
				Description: description,
				Date:        when,
			})
			if err != nil {
				return err
			}

			currency := store.Settings(ctx).Currency
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s (%s) on %s",
				tx.Type,
				model.FormatCurrency(tx.Amount, currency),
				model.CategoryName(store.Categories(ctx), tx.Category),
				cli.FormatDate(tx.Date))))
			fmt.Println(cli.SubtleStyle.Render("id: " + tx.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&description, "desc", "", "free-form description")

	return cmd
}
