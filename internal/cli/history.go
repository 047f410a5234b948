package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd(deps *Dependencies) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently generated highlight pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.Store == nil {
				return fmt.Errorf("run history is not available (database could not be opened)")
			}

			runs, err := deps.Store.Recent(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			for _, r := range runs {
				src := r.SourceURL
				if src == "" {
					src = "(no video)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %2d cards  %-40s  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04"), r.CardCount, src, r.OutputPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "number of runs to show")
	return cmd
}
