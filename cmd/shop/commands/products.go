package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service"
)

func printProducts(page model.ProductPage) error {
	if asJSON {
		return printJSON(page)
	}
	rows := make([][]string, 0, len(page.Products))
	for _, p := range page.Products {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name, category, money(p.Price), strconv.Itoa(p.Quantity)})
	}
	table([]string{"ID", "NAME", "CATEGORY", "PRICE", "STOCK"}, rows)
	fmt.Printf("page %d, %d of %d\n", page.Page, len(page.Products), page.Total)
	return nil
}

func productsCmd() *cobra.Command {
	var (
		search, category, sortBy, order string
		page, limit                     int
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List or search products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var limitPtr *int
			if cmd.Flags().Changed("limit") {
				limitPtr = &limit
			}

			if search != "" {
				result, err := appCtx.Services.Search.Search(ctx, search, limitPtr)
				if err != nil {
					return err
				}
				return printProducts(result)
			}

			params := service.ProductParams{Limit: limitPtr}
			if cmd.Flags().Changed("page") {
				params.Page = &page
			}
			if category != "" {
				params.Category = &category
			}
			if sortBy != "" {
				params.SortBy = &sortBy
			}
			switch o := model.SortOrder(order); o {
			case "":
			case model.SortAsc, model.SortDesc:
				params.Order = &o
			default:
				return fmt.Errorf("--order must be asc or desc")
			}

			result, err := appCtx.Services.Products.Fetch(ctx, params)
			if err != nil {
				return err
			}
			return printProducts(result)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "search term")
	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field, e.g. price")
	cmd.Flags().StringVar(&order, "order", "", "asc or desc")
	cmd.Flags().IntVar(&page, "page", 0, "page number, from 0")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	return cmd
}

func productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			p, err := appCtx.Services.Products.FetchByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(p)
			}
			fmt.Printf("%s  %s\n", p.Name, money(p.Price))
			if p.Category != nil {
				fmt.Printf("Category: %s\n", p.Category.Name)
			}
			fmt.Printf("In stock: %d\n", p.Quantity)
			if p.Description != "" {
				fmt.Println()
				fmt.Println(p.Description)
			}
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Services.Category.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(list)
			}
			rows := make([][]string, 0, len(list))
			for _, c := range list {
				rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Name})
			}
			table([]string{"ID", "NAME"}, rows)
			return nil
		},
	}
}
