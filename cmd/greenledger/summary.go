package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/analytics"
	"github.com/greenledger/greenledger/internal/charts"
	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
)

func summaryCmd() *cobra.Command {
	var (
		periodFlag string
		withCharts bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and spending breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			txns := store.Transactions(ctx)
			cats := store.Categories(ctx)
			set := store.Settings(ctx)
			now := time.Now()
			r := period.Resolve(period.Period(periodFlag), now)

			income := analytics.TotalIncome(txns, r)
			expenses := analytics.TotalExpenses(txns, r)
			balance := income.Sub(expenses)

			heading := fmt.Sprintf("Summary (%s to %s)", cli.FormatDate(r.Start), cli.FormatDate(r.End))
			if period.Period(periodFlag) == period.All {
				heading = "Summary (all time)"
			}
			fmt.Println(cli.FormatTitle(heading))
			fmt.Printf("  Income    %s\n", cli.IncomeStyle.Render(model.FormatCurrency(income, set.Currency)))
			fmt.Printf("  Expenses  %s\n", cli.ExpenseStyle.Render(model.FormatCurrency(expenses, set.Currency)))
			fmt.Printf("  Balance   %s\n", cli.BoldStyle.Render(model.FormatCurrency(balance, set.Currency)))
			if income.IsPositive() {
				rate := analytics.SavingsRate(income, expenses)
				fmt.Printf("  Savings   %s%%\n", rate.StringFixed(1))
			}
			fmt.Println()

			byCategory := analytics.ExpensesByCategory(txns, cats, r)
			if top, ok := analytics.TopSpendingCategory(byCategory, cats); ok {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("Top spending category: %s (%s)",
					top.Name, model.FormatCurrency(top.Amount, set.Currency))))
			}

			if !withCharts {
				return nil
			}

			registry := charts.NewRegistry(func(string) (charts.Renderer, error) {
				return charts.NewTermRenderer(os.Stdout, set.Currency), nil
			})
			defer registry.Close()

			if err := registry.Render("breakdown", charts.ExpenseBreakdown(byCategory, cats)); err != nil {
				return err
			}
			if err := registry.Render("series", charts.IncomeExpenseSeries(analytics.MonthlySeries(txns, now.Year()), now.Year())); err != nil {
				return err
			}
			return registry.Render("trend", charts.SpendingTrend(analytics.TrailingMonthlySpending(txns, now, 6)))
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(period.Month), "period (today, week, month, quarter, year, all)")
	cmd.Flags().BoolVar(&withCharts, "charts", false, "render charts")

	return cmd
}
