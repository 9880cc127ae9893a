package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/ttml2srt/internal/config"
	"github.com/spf13/cobra"
)

var dumpConfigCmd = &cobra.Command{
	Use:   "dumpconfig [destination]",
	Short: "Dump default or active configuration (YAML)",
	Long: `Write the active configuration, the composition of the embedded
defaults and the file given with --config, as YAML.

Without a destination the configuration goes to stdout. Use --default to
see the embedded configuration instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDumpConfig,
}

func init() {
	rootCmd.AddCommand(dumpConfigCmd)

	dumpConfigCmd.Flags().
		Bool("default", false, "Output the default embedded configuration")
}

func runDumpConfig(cmd *cobra.Command, args []string) error {
	useDefault, _ := cmd.Flags().GetBool("default")

	var (
		data []byte
		err  error
	)
	if useDefault {
		data = config.Default()
	} else if data, err = config.Dump(cfg); err != nil {
		return err
	}

	if len(args) == 0 {
		_, err = os.Stdout.Write(data)
		return err
	}

	logger.Infow("Writing configuration", "destination", args[0])
	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}
