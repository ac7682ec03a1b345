package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			terms := appCtx.Services.Search.Recent()
			if asJSON {
				return printJSON(terms)
			}
			for _, t := range terms {
				fmt.Println(t)
			}
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Services.Search.ClearRecent(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Recent searches cleared")
			return nil
		},
	})
	return cmd
}
