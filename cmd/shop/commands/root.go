package commands

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fsanano/shop-client/internal/app"
	"fsanano/shop-client/internal/config"
	"fsanano/shop-client/internal/service"
)

var (
	home       string
	passphrase string
	apiURL     string
	verbose    bool
	asJSON     bool

	appCtx *app.App
)

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "shop",
		Short:         "Shop from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if passphrase != "" {
				cfg.Passphrase = passphrase
			}
			if apiURL != "" {
				cfg.API.BaseURL = apiURL
			}

			logger := log.New(io.Discard, "", 0)
			if verbose {
				logger = log.New(os.Stderr, "shop: ", log.LstdFlags)
			}

			a, err := app.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			a.Restore(cmd.Context())
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.shop)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the saved session")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "shop API base URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log failed calls to stderr")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		loginCmd(), signupCmd(), logoutCmd(), whoamiCmd(),
		productsCmd(), productCmd(), categoriesCmd(),
		cartCmd(), checkoutCmd(),
		ordersCmd(), orderCmd(),
		addressCmd(), wishlistCmd(),
		commentsCmd(), commentCmd(),
		profileCmd(), recentCmd(),
	)
	return root
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer func() {
		if appCtx != nil {
			appCtx.Close()
		}
	}()

	root := newRoot()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", service.Message(err))
		return err
	}
	return nil
}

// requireLogin fails commands that need a session.
func requireLogin() error {
	if !appCtx.State.Auth().IsAuthenticated {
		return fmt.Errorf("not logged in, run: shop login")
	}
	return nil
}
