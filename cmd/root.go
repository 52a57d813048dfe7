// Package cmd implements the CLI commands for photominutes using Cobra.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "photominutes [INPUT OUTPUT ONLINE_BASE_PATH]",
	Short: "photominutes — turn meeting photo folders into Markdown minutes",
	Long: `photominutes converts a directory of meeting-photo sections into resized
images plus a Markdown document linking them.

Every subdirectory of INPUT is a section. Each image is written to OUTPUT as
<section>/<name>_small.<ext> and <section>/<name>_large.<ext>, and linked in
the Markdown under ONLINE_BASE_PATH/<section>/.

The three paths may also come from the config file (input, output,
online_base_path); PHOTO_MINUTES_BASE_URL supplies ONLINE_BASE_PATH.
Arguments given on the command line win.`,
	Example: `  photominutes ./photos ./public/minutes https://example.org/minutes
  photominutes ./photos ./public/minutes https://example.org/minutes --html --pdf
  photominutes ./photos ./public/minutes https://example.org/minutes --skip-image-conversion
  photominutes --config photominutes.yaml`,
	Args:          cobra.MaximumNArgs(3),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()
	},
	RunE: runConvert,
}

// Execute runs the root command and exits non-zero on failure.
func Execute(version string) {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
