package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranminhduc4802/cardflow/internal/tui"
)

func newReviewCmd(deps *Dependencies) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "review TRANSCRIPT",
		Short: "Pick the highlight cards interactively, then generate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(args[0])

			segs, cards, err := deps.Processor.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}

			kept, err := tui.Review(segs, cards)
			if err != nil {
				return err
			}
			if kept == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted, nothing generated.")
				return nil
			}

			req.Segments = kept
			res, err := deps.Processor.Process(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d cards: %s\n", res.CardCount, res.PagePath)
			return nil
		},
	}

	flags.register(cmd, deps)
	return cmd
}
