package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/model"
)

func addressFlags(cmd *cobra.Command, req *model.AddressRequest) {
	cmd.Flags().StringVar(&req.Label, "label", "", "label, e.g. Home")
	cmd.Flags().StringVar(&req.FullAddress, "address", "", "full address")
	cmd.Flags().StringVar(&req.AddressType, "type", "", "address type")
	cmd.Flags().BoolVar(&req.IsDefault, "default", false, "make this the default address")
}

func printAddress(a model.Address) error {
	if asJSON {
		return printJSON(a)
	}
	fmt.Printf("Saved address %d (%s)\n", a.ID, a.Label)
	return nil
}

func addressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage shipping addresses",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireLogin()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Services.Addresses.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(list)
			}
			rows := make([][]string, 0, len(list))
			for _, a := range list {
				def := ""
				if a.IsDefault {
					def = "*"
				}
				rows = append(rows, []string{def, strconv.FormatInt(a.ID, 10), a.Label, a.AddressType, a.FullAddress})
			}
			table([]string{"", "ID", "LABEL", "TYPE", "ADDRESS"}, rows)
			return nil
		},
	})

	var addReq model.AddressRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Save a new address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appCtx.Services.Addresses.Create(cmd.Context(), addReq)
			if err != nil {
				return err
			}
			return printAddress(a)
		},
	}
	addressFlags(add, &addReq)

	var updReq model.AddressRequest
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a saved address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "address")
			if err != nil {
				return err
			}
			a, err := appCtx.Services.Addresses.Update(cmd.Context(), id, updReq)
			if err != nil {
				return err
			}
			return printAddress(a)
		},
	}
	addressFlags(update, &updReq)

	cmd.AddCommand(add, update,
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Delete a saved address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "address")
				if err != nil {
					return err
				}
				if err := appCtx.Services.Addresses.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Println("Address deleted")
				return nil
			},
		},
		&cobra.Command{
			Use:   "default <id>",
			Short: "Make an address the default",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0], "address")
				if err != nil {
					return err
				}
				a, err := appCtx.Services.Addresses.SetDefault(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printAddress(a)
			},
		},
	)
	return cmd
}
