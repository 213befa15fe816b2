package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/app"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		logger := logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Starting server", "addr", cfg.GetAppAddr(), "data_dir", cfg.GetDataDir())
		if err := app.Serve(ctx, app.NewInjector(cfg, afero.NewOsFs(), logger)); err != nil {
			logger.Error("Server stopped with error", "error", err)
			return err
		}
		logger.Info("Server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
