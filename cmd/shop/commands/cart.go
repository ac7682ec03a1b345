package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/cart"
	"fsanano/shop-client/internal/model"
)

func parseIDs(raw string) ([]int64, error) {
	ids := []int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseID(part, "product")
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func printCart(items []model.CartItem, sel *cart.Selection) error {
	sum := cart.Summarize(items, sel)
	if asJSON {
		return printJSON(map[string]any{"items": items, "selected": sel.IDs(), "summary": sum})
	}
	if len(items) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		mark := " "
		if sel.Has(it.ProductID) {
			mark = "x"
		}
		rows = append(rows, []string{mark, strconv.FormatInt(it.ProductID, 10), it.ProductName, strconv.Itoa(it.Quantity), money(it.Price), money(it.Subtotal())})
	}
	table([]string{"", "ID", "NAME", "QTY", "PRICE", "SUBTOTAL"}, rows)
	fmt.Printf("Selected subtotal: %s\n", money(sum.Subtotal))
	return nil
}

func cartCmd() *cobra.Command {
	var selected string
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			c, err := appCtx.Services.Cart.Fetch(cmd.Context())
			if err != nil {
				return err
			}
			sel := cart.NewSelection()
			if cmd.Flags().Changed("selected") {
				ids, err := parseIDs(selected)
				if err != nil {
					return err
				}
				sel = cart.NewSelection(ids...)
			} else {
				sel.SelectAll(c.Items)
			}
			return printCart(c.Items, sel)
		},
	}
	cmd.Flags().StringVar(&selected, "selected", "", "comma separated product ids to price (default all)")

	cmd.AddCommand(cartAddCmd(), cartSetCmd(), cartStepCmd("inc", 1), cartStepCmd("dec", -1), cartRemoveCmd(), cartClearCmd())
	return cmd
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <productId> [quantity]",
		Short: "Add a product to the cart",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			qty := 1
			if len(args) == 2 {
				if qty, err = strconv.Atoi(args[1]); err != nil || qty <= 0 {
					return fmt.Errorf("quantity must be a positive integer")
				}
			}
			c, err := appCtx.Services.Cart.Add(cmd.Context(), id, qty)
			if err != nil {
				return err
			}
			fmt.Printf("Added to cart. Total: %s\n", money(c.TotalPrice))
			return nil
		},
	}
}

func cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <productId> <quantity>",
		Short: "Set a line's quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 0 {
				return fmt.Errorf("quantity must be a non-negative integer")
			}
			if qty == 0 {
				return appCtx.Services.Cart.Remove(cmd.Context(), id)
			}
			c, err := appCtx.Services.Cart.Update(cmd.Context(), id, qty)
			if err != nil {
				return err
			}
			fmt.Printf("Updated. Total: %s\n", money(c.TotalPrice))
			return nil
		},
	}
}

func cartStepCmd(name string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <productId>",
		Short: fmt.Sprintf("Change a line's quantity by %+d", delta),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			if _, err := appCtx.Services.Cart.Fetch(cmd.Context()); err != nil {
				return err
			}
			if err := appCtx.Services.Cart.ChangeQuantity(cmd.Context(), id, delta); err != nil {
				return err
			}
			c := appCtx.State.Cart()
			sel := cart.NewSelection()
			sel.SelectAll(c.Items)
			return printCart(c.Items, sel)
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <productId>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			if err := appCtx.Services.Cart.Remove(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Removed")
			return nil
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			if err := appCtx.Services.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Cart cleared")
			return nil
		},
	}
}
