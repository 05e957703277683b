package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/insights"
	"github.com/greenledger/greenledger/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
	}

	cmd.AddCommand(budgetShowCmd())
	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetClearCmd())

	return cmd
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show month-to-date budget performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			set := store.Settings(ctx)
			rows := insights.BudgetPerformance(
				store.Transactions(ctx),
				store.Categories(ctx),
				set,
				time.Now(),
			)

			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets configured. Use 'greenledger budget set' to add one."))
				return nil
			}

			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				status := cli.SuccessStyle.Render("on track")
				if row.Over {
					status = cli.ErrorStyle.Render("over by " + model.FormatCurrency(row.Overage, set.Currency))
				}
				table = append(table, []string{
					row.Category.Icon + " " + row.Category.Name,
					model.FormatCurrency(row.Spent, set.Currency),
					model.FormatCurrency(row.Budget, set.Currency),
					row.Percent.StringFixed(1) + "%",
					status,
				})
			}
			fmt.Print(cli.RenderTable([]string{"Category", "Spent", "Budget", "Used", "Status"}, table))
			return nil
		},
	}
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a monthly budget for an expense category",
		Long: `Set the monthly spending ceiling for an expense category.
Setting the amount to 0 removes the budget.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := model.ParseAmount(args[1])
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.SetBudget(ctx, args[0], amount); err != nil {
				return err
			}

			if amount.IsZero() {
				fmt.Println(cli.FormatSuccess("Removed budget for " + args[0]))
			} else {
				currency := store.Settings(ctx).Currency
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set to %s/month",
					args[0], model.FormatCurrency(amount, currency))))
			}
			return nil
		},
	}
}

func budgetClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <category>",
		Short: "Remove a category budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := led.ClearBudget(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Removed budget for " + args[0]))
			return nil
		},
	}
}
