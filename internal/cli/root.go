package cli

import (
	"github.com/spf13/cobra"

	"github.com/tranminhduc4802/cardflow/internal/config"
	"github.com/tranminhduc4802/cardflow/internal/history"
	"github.com/tranminhduc4802/cardflow/internal/logger"
	"github.com/tranminhduc4802/cardflow/internal/processor"
	"github.com/tranminhduc4802/cardflow/internal/version"
)

// Dependencies carries the wired-up services into the commands.
type Dependencies struct {
	Config    *config.Config
	Logger    logger.Logger
	Processor processor.Processor
	Store     *history.Store
}

// NewRootCmd builds the cardflow command tree.
func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cardflow",
		Short: "Turn a video transcript into a static highlight page",
		Long: "cardflow parses a timed transcript, selects the segments worth showing\n" +
			"(keyword hits first, evenly spread filler after), and renders a static\n" +
			"page of highlight cards with thumbnails linked back into the video.",
		SilenceUsage: true,
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(newGenerateCmd(deps))
	rootCmd.AddCommand(newReviewCmd(deps))
	rootCmd.AddCommand(newWatchCmd(deps))
	rootCmd.AddCommand(newConvertCmd(deps))
	rootCmd.AddCommand(newHistoryCmd(deps))

	return rootCmd
}

// generateFlags are shared by generate and review.
type generateFlags struct {
	url          string
	keywords     []string
	cards        int
	description  string
	outputDir    string
	skipDownload bool
	docx         bool
}

func (f *generateFlags) register(cmd *cobra.Command, deps *Dependencies) {
	cmd.Flags().StringVar(&f.url, "url", "", "video URL (YouTube links get an embedded player)")
	cmd.Flags().StringSliceVarP(&f.keywords, "keywords", "k", deps.Config.Pipeline.Keywords, "keywords that mark interesting segments")
	cmd.Flags().IntVarP(&f.cards, "cards", "n", deps.Config.Pipeline.Cards, "number of highlight cards")
	cmd.Flags().StringVarP(&f.description, "description", "d", deps.Config.Pipeline.Description, "description shown on the page")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", deps.Config.Paths.Output, "output directory")
	cmd.Flags().BoolVar(&f.skipDownload, "skip-download", false, "skip the video download and use placeholder thumbnails")
	cmd.Flags().BoolVar(&f.docx, "docx", false, "also export a DOCX digest of the cards")
}

func (f *generateFlags) request(transcriptPath string) processor.Request {
	return processor.Request{
		TranscriptPath: transcriptPath,
		VideoURL:       f.url,
		Keywords:       f.keywords,
		CardCount:      f.cards,
		Description:    f.description,
		OutputDir:      f.outputDir,
		SkipDownload:   f.skipDownload,
		ExportDocx:     f.docx,
	}
}
