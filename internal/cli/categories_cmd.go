package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanbipark/worklog/internal/cli/formatter"
	"github.com/hanbipark/worklog/internal/config"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the configured category buckets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			set := cfg.CategorySet()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Categories"))
			for i, name := range set.Names {
				line := "  " + formatter.CategoryStyle(i).Render(name)
				if name == set.CatchAll {
					line += " " + formatter.Dim("(catch-all)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
