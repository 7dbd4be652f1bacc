package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"glpi-insights/internal/visuals"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	reportFilters filterFlags
	reportOutput  string
	reportOpen    bool
	reportCharts  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render every dashboard view as a markdown report",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		in, source, err := reportFilters.input(now)
		if err != nil {
			return err
		}

		path := reportOutput
		if path == "" {
			path = filepath.Join(cfg.ReportDir, fmt.Sprintf("glpi-report-%s.md", now.Format("20060102-150405")))
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer f.Close()

		err = visuals.WriteReport(f, in, visuals.ReportOptions{
			Source:      source,
			Charts:      reportCharts && cfg.EnableMermaidCharts,
			GeneratedAt: now,
		})
		if err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close report: %w", err)
		}

		log.Info().Str("path", path).Int("tickets", len(in.Tickets)).Msg("Report written")
		fmt.Fprintln(cmd.OutOrStdout(), path)

		if reportOpen {
			if err := browser.OpenFile(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("Failed to open report")
			}
		}
		return nil
	},
}

func init() {
	reportFilters.register(reportCmd)
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "report path (default: reports/glpi-report-<timestamp>.md under DATA_PATH)")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report once written")
	reportCmd.Flags().BoolVar(&reportCharts, "charts", true, "embed Mermaid charts")
}
