package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"agendas-mcp/internal/config"
	"agendas-mcp/internal/dataset"
	"agendas-mcp/internal/logging"
	"agendas-mcp/internal/mcp"
	"agendas-mcp/internal/observability/metrics"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	sources []string
	cfg     *config.AppConfig

	dashboardMetrics *metrics.DashboardMetrics
	store            *dataset.Store
)

var rootCmd = &cobra.Command{
	Use:   "agendas-mcp",
	Short: "agendas-mcp is an MCP Server for appointment schedule analytics",
	Long: `An MCP Server that loads a published appointment-slot dataset (scheduled, free and blocked slots
per professional and day) and answers filtered dashboard queries: KPIs, specialty breakdowns,
professional and blocked-slot rankings, and weekly or daily series.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		if len(sources) > 0 {
			cfg.DataSources = sources
		}

		dashboardMetrics = metrics.NewDashboardMetrics(nil)
		store = dataset.NewStore(cfg.Loader(), dashboardMetrics)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Strs("sources", cfg.DataSources).
			Msg("agendas-mcp starting")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		// Tools report the loading state until the first load finishes.
		go func() {
			_ = store.Load(ctx)
		}()

		mcp.Version = Version
		server := mcp.NewServer(store, mcp.Options{
			EnableMermaidCharts: cfg.EnableMermaidCharts,
			Metrics:             dashboardMetrics,
		})
		return server.Serve(ctx)
	},
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringSliceVar(&sources, "source", nil, "dataset file paths, URLs or s3://bucket/key URIs, overriding DATA_SOURCE (repeatable)")
}
