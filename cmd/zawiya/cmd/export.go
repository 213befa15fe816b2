package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/zawiya/internal/app"
	"github.com/nfrund/zawiya/internal/config"
	"github.com/nfrund/zawiya/internal/logging"
	"github.com/nfrund/zawiya/internal/service"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every stored student to an xlsx workbook",
	Long: `export reads the students of the local data directory (or the configured
database) and writes them to a spreadsheet. It does not need a running server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.GetLogFormat(), cfg.GetLogLevel())
		name, err := exportStudents(cmd.Context(), cfg, afero.NewOsFs(), logger, exportOutput, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported students to %s\n", name)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write (default students_export_<date>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}

func exportStudents(ctx context.Context, cfg *config.Config, fs afero.Fs, logger *slog.Logger, output string, now time.Time) (string, error) {
	i := app.NewInjector(cfg, fs, logger)
	defer i.Shutdown()

	students, err := do.Invoke[*service.Students](i)
	if err != nil {
		return "", err
	}
	if output == "" {
		output = service.ExportFileName(now)
	}

	f, err := fs.Create(output)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", output, err)
	}
	if err := students.Export(ctx, f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to export students: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", output, err)
	}
	return output, nil
}
