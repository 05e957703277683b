package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
	"github.com/greenledger/greenledger/internal/pipeline"
)

func listCmd() *cobra.Command {
	var (
		search     string
		txType     string
		category   string
		periodFlag string
		sortFlag   string
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List transactions with filtering, sorting, and pagination.

Examples:
  greenledger list --period month
  greenledger list --search coffee --type expense
  greenledger list --sort amount-desc --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			field, dir, err := parseSort(sortFlag)
			if err != nil {
				return err
			}

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			st := pipeline.DefaultState()
			st.Search = search
			st.Type = txType
			st.Category = category
			st.Period = period.Period(periodFlag)
			st.SortField = field
			st.SortDir = dir
			st.Page = page
			// The flag wins when passed; otherwise the config file's
			// list.page-size applies.
			st.PageSize = viper.GetInt("list.page-size")

			cats := store.Categories(ctx)
			set := store.Settings(ctx)
			res := pipeline.Apply(store.Transactions(ctx), cats, st, time.Now())

			if res.Total == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions match. Use 'greenledger add' to record one."))
				return nil
			}

			now := time.Now()
			rows := make([][]string, 0, len(res.Page))
			for _, tx := range res.Page {
				rows = append(rows, []string{
					shortID(tx.ID),
					cli.RelativeDate(tx.Date, now),
					tx.Description,
					model.CategoryIcon(cats, tx.Category) + " " + model.CategoryName(cats, tx.Category),
					cli.SignedAmount(tx.Type, tx.Amount, set.Currency),
				})
			}
			fmt.Print(cli.RenderTable([]string{"ID", "Date", "Description", "Category", "Amount"}, rows))

			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
				"%d transactions  income %s  expenses %s  balance %s  page %d/%d",
				res.Total,
				model.FormatCurrency(res.Income, set.Currency),
				model.FormatCurrency(res.Expenses, set.Currency),
				model.FormatCurrency(res.Balance, set.Currency),
				res.PageIndex, res.PageCount)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match description or category name")
	cmd.Flags().StringVarP(&txType, "type", "t", pipeline.FilterAll, "filter by type (all, income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", pipeline.FilterAll, "filter by category id")
	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(period.Month), "period (today, week, month, quarter, year, all)")
	cmd.Flags().StringVar(&sortFlag, "sort", "date-desc", "sort as field-direction (date, amount, category, type)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", pipeline.DefaultPageSize, "items per page")

	_ = viper.BindPFlag("list.page-size", cmd.Flags().Lookup("page-size"))

	return cmd
}
