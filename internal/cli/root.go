package cli

import (
	"fmt"

	"github.com/mgpai22/ttml2srt/internal/config"
	"github.com/mgpai22/ttml2srt/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ttml2srt",
	Short: "Convert TTML timed text into subtitle files",
	Long: `ttml2srt converts TTML/DFXP timed text documents into SubRip subtitles.

Nested timing and styling are resolved into flat, non-overlapping cues
with <font color> and <i> markup. WebVTT and ASS output are also available.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadConfiguration(configPath); err != nil {
			return fmt.Errorf("unable to prepare configuration: %w", err)
		}
		logger = logging.NewLogger(cfg.Logging.Level, verbose)
		if configPath == "" {
			logger.Debugw("Using defaults (no configuration file)")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Load configuration from FILE (YAML)")
}
