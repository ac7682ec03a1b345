package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func wishlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Show wishlisted products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			items, err := appCtx.Services.Wishlist.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(items)
			}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{strconv.FormatInt(it.Product.ID, 10), it.Product.Name, money(it.Product.Price)})
			}
			table([]string{"ID", "NAME", "PRICE"}, rows)
			return nil
		},
	}

	edit := func(use, short string, run func(cmd *cobra.Command, id int64) (string, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <productId>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireLogin(); err != nil {
					return err
				}
				id, err := parseID(args[0], "product")
				if err != nil {
					return err
				}
				if _, err := appCtx.Services.Wishlist.Fetch(cmd.Context()); err != nil {
					return err
				}
				msg, err := run(cmd, id)
				if err != nil {
					return err
				}
				fmt.Println(msg)
				return nil
			},
		}
	}

	cmd.AddCommand(
		edit("add", "Add a product to the wishlist", func(cmd *cobra.Command, id int64) (string, error) {
			return "Added to wishlist", appCtx.Services.Wishlist.Add(cmd.Context(), id)
		}),
		edit("rm", "Remove a product from the wishlist", func(cmd *cobra.Command, id int64) (string, error) {
			return "Removed from wishlist", appCtx.Services.Wishlist.Remove(cmd.Context(), id)
		}),
		edit("toggle", "Add or remove a product", func(cmd *cobra.Command, id int64) (string, error) {
			on, err := appCtx.Services.Wishlist.Toggle(cmd.Context(), id)
			if on {
				return "Added to wishlist", err
			}
			return "Removed from wishlist", err
		}),
	)
	return cmd
}
