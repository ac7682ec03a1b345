package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/model"
)

func loginCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.Services.Auth.Login(cmd.Context(), model.LoginRequest{Username: username, Password: password})
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", sess.User.Username)
			if appCtx.Config.Passphrase == "" {
				fmt.Println("Session not saved; pass -p to keep it between runs")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func signupCmd() *cobra.Command {
	var req model.SignUpRequest
	var roles string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if roles != "" {
				req.Role = strings.Split(roles, ",")
			}
			sess, err := appCtx.Services.Auth.SignUp(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s\n", sess.User.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "username")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&roles, "roles", "", "comma separated roles (default user)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Services.Auth.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireLogin(); err != nil {
				return err
			}
			auth := appCtx.State.Auth()
			if asJSON {
				return printJSON(auth)
			}
			roles := make([]string, 0, len(auth.User.Roles))
			for _, r := range auth.User.Roles {
				roles = append(roles, string(r.RoleName))
			}
			fmt.Printf("%s <%s> %s\n", auth.User.Username, auth.User.Email, strings.Join(roles, ","))
			return nil
		},
	}
}
