// cmd/literary-agent/root.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openclaw/literary-agent/internal/logging"
	"github.com/openclaw/literary-agent/internal/metrics"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	verbose bool
}

// logger is built once in PersistentPreRunE and shared by every
// subcommand.
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "literary-agent",
	Short: "Self-publishing toolkit: library outreach, price watch, sales reports, social content",
	Long: `literary-agent automates the marketing chores of a self-published
catalog: outreach campaigns to library acquisition desks, competitor
price monitoring, sales dashboards with KPI tracking, and weekly
social media content plans.

State lives under ~/.openclaw/literary-agent (override with
LITERARY_AGENT_DATA_DIR).`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		l, err := logging.New(rootFlags.verbose)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		metrics.Init()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(outreachCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(socialCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.Version = version
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
