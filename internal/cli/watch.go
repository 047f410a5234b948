package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tranminhduc4802/cardflow/internal/processor"
	"github.com/tranminhduc4802/cardflow/internal/watcher"
)

func newWatchCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the inbox directory and generate a page per transcript",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := deps.Config
			log := deps.Logger

			if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
				return err
			}

			handler := func(ctx context.Context, path string) error {
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				_, err := deps.Processor.Process(ctx, processor.Request{
					TranscriptPath: path,
					Keywords:       cfg.Pipeline.Keywords,
					CardCount:      cfg.Pipeline.Cards,
					Description:    cfg.Pipeline.Description,
					OutputDir:      filepath.Join(cfg.Paths.Output, name),
					SkipDownload:   true,
				})
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Watching %s, writing pages under %s", cfg.Paths.Input, cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
				cancel()
				return nil
			case err := <-errChan:
				return err
			}
		},
	}

	return cmd
}
