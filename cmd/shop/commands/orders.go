package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/orders"
)

func ordersCmd() *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			t := orders.Tab(tab)
			switch t {
			case orders.TabAll, orders.TabPending, orders.TabDelivered, orders.TabCancelled:
			default:
				return fmt.Errorf("--tab must be one of all, pending, delivered, cancelled")
			}
			list, err := appCtx.Services.Orders.List(cmd.Context(), t)
			if err != nil {
				return err
			}
			views := orders.Views(list)
			if asJSON {
				return printJSON(views)
			}
			if len(views) == 0 {
				fmt.Println("No orders")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				rows = append(rows, []string{strconv.FormatInt(v.ID, 10), v.TrackingNumber, v.OrderDate, v.Status, strconv.Itoa(v.Quantity), money(v.Total)})
			}
			table([]string{"ID", "TRACKING", "DATE", "STATUS", "QTY", "TOTAL"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(orders.TabAll), "all, pending, delivered or cancelled")
	return cmd
}

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order <id>",
		Short: "Show an order and its tracking history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "order")
			if err != nil {
				return err
			}
			o, err := appCtx.Services.Orders.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(o)
			}
			v := orders.NewView(o)
			fmt.Printf("Order %d  %s  %s\n", v.ID, v.TrackingNumber, v.Status)
			rows := make([][]string, 0, len(o.OrderItems))
			for _, it := range o.OrderItems {
				rows = append(rows, []string{it.ProductName, strconv.Itoa(it.Quantity), money(it.Price)})
			}
			table([]string{"NAME", "QTY", "PRICE"}, rows)
			fmt.Printf("Total: %s\n", money(o.TotalAmount))
			for _, t := range o.TrackingHistory {
				fmt.Printf("  %s  %s  %s\n", t.Timestamp.Format("02/01/2006 15:04"), t.Status, t.Location)
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			id, err := parseID(args[0], "order")
			if err != nil {
				return err
			}
			if err := appCtx.Services.Orders.Cancel(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Order %d cancelled\n", id)
			return nil
		},
	})
	return cmd
}
