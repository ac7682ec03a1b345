package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func commentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <productId>",
		Short: "List a product's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "product")
			if err != nil {
				return err
			}
			list, err := appCtx.Services.Comments.List(cmd.Context(), id)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(list)
			}
			rows := make([][]string, 0, len(list))
			for _, c := range list {
				when := ""
				if !c.CreatedAt.IsZero() {
					when = c.CreatedAt.Format("02/01/2006")
				}
				rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.Username, when, c.Content})
			}
			table([]string{"ID", "USER", "DATE", "COMMENT"}, rows)
			return nil
		},
	}
}

func commentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Post or delete comments",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <productId> <text...>",
			Short: "Comment on a product",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireLogin(); err != nil {
					return err
				}
				id, err := parseID(args[0], "product")
				if err != nil {
					return err
				}
				c, err := appCtx.Services.Comments.Add(cmd.Context(), id, strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				fmt.Printf("Comment %d posted\n", c.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <commentId>",
			Short: "Delete one of your comments",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireLogin(); err != nil {
					return err
				}
				id, err := parseID(args[0], "comment")
				if err != nil {
					return err
				}
				if err := appCtx.Services.Comments.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Println("Comment deleted")
				return nil
			},
		},
	)
	return cmd
}
