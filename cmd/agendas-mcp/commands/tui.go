package commands

import (
	"io"

	"agendas-mcp/internal/logging"
	"agendas-mcp/internal/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the dashboard interactively in the terminal",
	Long: `Opens a full-screen dashboard. Use 1-5 to toggle weeks, f/c/s to cycle the facility,
category and specialty filters, o/O to change the specialty sort and r to reload the dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext()
		defer stop()

		// A failed first load is shown on screen with a retry hint.
		_ = store.Load(ctx)

		// Console logs would draw over the alternate screen; keep the file sink only.
		if logger, err := logging.New(logging.Options{Verbose: verbose, Dir: cfg.LogDir, Console: io.Discard}); err == nil {
			log.Logger = logger
		}
		return tui.Run(ctx, store)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
