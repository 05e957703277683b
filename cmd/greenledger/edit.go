package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/ledger"
	"github.com/greenledger/greenledger/internal/model"
)

func editCmd() *cobra.Command {
	var (
		txType      string
		amount      string
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Change individual fields of an existing transaction. Only the flags
you pass are changed; everything else keeps its current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var patch ledger.Patch
			if cmd.Flags().Changed("type") {
				t := model.TransactionType(txType)
				patch.Type = &t
			}
			if cmd.Flags().Changed("amount") {
				a, err := model.ParseAmount(amount)
				if err != nil {
					return err
				}
				patch.Amount = &a
			}
			if cmd.Flags().Changed("category") {
				patch.Category = &category
			}
			if cmd.Flags().Changed("desc") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("date") {
				d, err := model.ParseDate(date)
				if err != nil {
					return err
				}
				patch.Date = &d
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			tx, err := led.Update(ctx, args[0], patch)
			if err != nil {
				return err
			}
			if tx == nil {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("No transaction with id %s", args[0])))
				return nil
			}

			currency := store.Settings(ctx).Currency
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated %s: %s %s on %s",
				tx.ID,
				tx.Type,
				model.FormatCurrency(tx.Amount, currency),
				cli.FormatDate(tx.Date))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD)")

	return cmd
}
