package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/apiclient"
	"github.com/nfrund/zawiya/internal/config"
)

var (
	baseURL string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "zawiya",
	Short: "Zawiya electronic school",
	Long: `zawiya runs the school website and talks to a running instance from the terminal.

Available commands:
  serve       Start the web server
  register    Register a student through the interactive wizard
  stats       Show live registration statistics
  schedule    List class sessions, optionally copying a meeting link
  export      Write every stored student to an xlsx workbook

Use "zawiya [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg := config.FromEnv()
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", cfg.GetAppBaseURL(), "address of a running zawiya server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", cfg.GetAPITimeout(), "timeout of every request to the server")
}

func newClient() *apiclient.Client {
	return apiclient.New(baseURL, timeout)
}
