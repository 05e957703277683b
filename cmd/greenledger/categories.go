package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/model"
)

func categoriesCmd() *cobra.Command {
	var typeFilter string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List transaction categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			cats := store.Categories(ctx)
			if typeFilter != "" {
				cats = model.CategoriesByType(cats, model.CategoryType(typeFilter))
			}

			if len(cats) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found."))
				return nil
			}

			rows := make([][]string, 0, len(cats))
			for _, cat := range cats {
				rows = append(rows, []string{cat.ID, cat.Icon + " " + cat.Name, string(cat.Type), cat.Color})
			}
			fmt.Print(cli.RenderTable([]string{"ID", "Name", "Type", "Color"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "", "filter by type (income, expense)")

	return cmd
}
