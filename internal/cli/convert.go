package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranminhduc4802/cardflow/internal/transcript"
)

func newConvertCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert INPUT [OUTPUT]",
		Short: "Convert a pasted timestamped transcript to WebVTT",
		Long: "Reads a loosely formatted transcript (lines like \"0:15 Some text\" or\n" +
			"\"[1:23:45] Some text\") and writes a proper WebVTT file usable with\n" +
			"generate. End times are estimated from the text length.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			entries, err := transcript.ParsePasted(string(data))
			if err != nil {
				return err
			}

			out := "transcript.vtt"
			if len(args) == 2 {
				out = args[1]
				if !strings.HasSuffix(out, ".vtt") {
					out += ".vtt"
				}
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()

			if err := transcript.WriteVTT(f, entries); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d entries to %s\n", len(entries), out)
			return nil
		},
	}

	return cmd
}
