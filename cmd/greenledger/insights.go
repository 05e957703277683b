package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/insights"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
)

func insightsCmd() *cobra.Command {
	var periodFlag string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show financial insights",
		Long:  `Evaluate the period's figures and report qualitative observations: cash flow, savings rate, spending concentration, and budget health.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			found := insights.Analyze(
				store.Transactions(ctx),
				store.Categories(ctx),
				store.Settings(ctx),
				period.Period(periodFlag),
				time.Now(),
			)

			if len(found) == 0 {
				fmt.Println(cli.InfoStyle.Render("Not enough activity in this period for insights."))
				return nil
			}

			for _, in := range found {
				var style = cli.InfoStyle
				switch in.Kind {
				case model.InsightPositive:
					style = cli.SuccessStyle
				case model.InsightWarning:
					style = cli.WarningStyle
				}
				fmt.Printf("%s %s\n", in.Icon, style.Render(in.Title))
				fmt.Println("   " + in.Message)
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(period.Month), "period (today, week, month, quarter, year, all)")

	return cmd
}
