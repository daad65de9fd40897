package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hanbipark/worklog/internal/cli/formatter"
	"github.com/hanbipark/worklog/internal/config"
)

func newAuthorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "Show the configured author shortlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Authors"))
			if len(cfg.Authors) == 0 {
				fmt.Fprintln(out, formatter.Dim("  none configured; report prompts for a name"))
				return nil
			}
			for _, a := range cfg.Authors {
				fmt.Fprintln(out, "  "+formatter.Bold(a))
			}
			return nil
		},
	}
}
