package commands

import (
	"context"
	"os"
	"os/signal"

	"glpi-insights/internal/config"
	"glpi-insights/internal/ingest"
	"glpi-insights/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
	loader  *ingest.Loader
)

var rootCmd = &cobra.Command{
	Use:   "glpi-insights",
	Short: "GLPI Insights is a helpdesk ticket-analytics engine",
	Long: `Analytics over GLPI ticket exports: KPIs, temporal, category, technician, requester,
location, priority, status, predictive, quality and problem-type views, served as MCP tools
or rendered as a markdown report.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		loader = ingest.NewLoader(cfg.CSVPath, ingest.NewCache(cfg.CacheSize))

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Str("csv", cfg.CSVPath).
			Msg("GLPI Insights starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command until it completes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.AddCommand(serveCmd, reportCmd, summaryCmd)
}
