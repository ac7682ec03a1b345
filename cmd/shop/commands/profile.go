package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/model"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show your profile, orders, wishlist and addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			ov, err := appCtx.Services.Profile.Overview(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(ov)
			}
			u := ov.User
			fmt.Printf("%s <%s>\n", u.Username, u.Email)
			if name := u.FirstName + " " + u.LastName; name != " " {
				fmt.Printf("Name: %s\n", name)
			}
			if u.Phone != "" {
				fmt.Printf("Phone: %s\n", u.Phone)
			}
			fmt.Printf("Orders: %d  Wishlist: %d  Addresses: %d\n", len(ov.Orders), len(ov.Wishlist), len(ov.Addresses))
			return nil
		},
	}

	var req model.UpdateProfileRequest
	update := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			if req == (model.UpdateProfileRequest{}) {
				return fmt.Errorf("nothing to update")
			}
			if req.Password != "" && req.CurrentPassword == "" {
				return fmt.Errorf("--current-password is required to change the password")
			}
			if _, err := appCtx.Services.Profile.Update(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Println("Profile updated")
			return nil
		},
	}
	update.Flags().StringVar(&req.Email, "email", "", "new email")
	update.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	update.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	update.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	update.Flags().StringVar(&req.Gender, "gender", "", "gender")
	update.Flags().StringVar(&req.Password, "password", "", "new password")
	update.Flags().StringVar(&req.CurrentPassword, "current-password", "", "current password")

	avatar := &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			url, err := appCtx.Services.Profile.UpdateAvatar(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Printf("Avatar updated: %s\n", url)
			return nil
		},
	}

	cmd.AddCommand(update, avatar)
	return cmd
}
