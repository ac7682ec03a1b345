package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/checkout"
	"fsanano/shop-client/internal/orders"
	"fsanano/shop-client/internal/service"
)

func checkoutCmd() *cobra.Command {
	var (
		shipping string
		items    string
		dryRun   bool
		form     checkout.ShippingForm
	)
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := requireLogin(); err != nil {
				return err
			}
			if _, err := appCtx.Services.Cart.Fetch(ctx); err != nil {
				return err
			}

			req := service.PlaceRequest{ShippingMethod: shipping, Form: &form}
			if cmd.Flags().Changed("items") {
				ids, err := parseIDs(items)
				if err != nil {
					return err
				}
				req.Selected = ids
			}

			q, err := appCtx.Services.Orders.Quote(req)
			if err != nil {
				return err
			}
			if dryRun {
				if asJSON {
					return printJSON(q)
				}
				rows := make([][]string, 0, len(q.Items))
				for _, it := range q.Items {
					rows = append(rows, []string{it.ProductName, strconv.Itoa(it.Quantity), money(it.Subtotal())})
				}
				table([]string{"NAME", "QTY", "SUBTOTAL"}, rows)
				fmt.Printf("Shipping: %s (%s)\n", q.Method.Name, money(q.Method.Price))
				fmt.Printf("Total: %s\n", money(q.Total))
				return nil
			}

			o, err := appCtx.Services.Orders.Place(ctx, req)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(orders.NewView(o))
			}
			fmt.Printf("Order placed. Tracking number: %s\n", orders.TrackingNumber(o.ID))
			return nil
		},
	}
	cmd.Flags().StringVar(&shipping, "shipping", checkout.DefaultMethod, "shipping method: free, standard or fast")
	cmd.Flags().StringVar(&items, "items", "", "comma separated product ids to price in the quote; placing an order requires every cart line")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the quote without placing the order")

	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "recipient first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "recipient last name")
	cmd.Flags().StringVar(&form.Country, "country", "", "country")
	cmd.Flags().StringVar(&form.StreetName, "street", "", "street and number")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().StringVar(&form.State, "state", "", "state or region (optional)")
	cmd.Flags().StringVar(&form.ZipCode, "zip", "", "zip code")
	cmd.Flags().StringVar(&form.PhoneNumber, "phone", "", "phone number")
	return cmd
}
