package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(deps *Dependencies) *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate TRANSCRIPT",
		Short: "Generate a highlight page from a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := deps.Processor.Process(cmd.Context(), flags.request(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d cards: %s\n", res.CardCount, res.PagePath)
			if res.DocxPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "DOCX digest: %s\n", res.DocxPath)
			}
			return nil
		},
	}

	flags.register(cmd, deps)
	return cmd
}
