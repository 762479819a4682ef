package commands

import (
	"encoding/json"
	"fmt"

	"agendas-mcp/internal/stats"
	"agendas-mcp/internal/visuals"

	"github.com/spf13/cobra"
)

var reportFlags struct {
	facility  string
	category  string
	specialty string
	weeks     []string
	sort      string
	dir       string
	format    string
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard of a selection to the terminal",
	Example: `  agendas-mcp report --week 3
  agendas-mcp report --facility "Unit A" --sort occupancyRate --dir asc
  agendas-mcp report --week 1,2 --format mermaid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := stats.ParseSelection(reportFlags.facility, reportFlags.category, reportFlags.specialty, reportFlags.weeks)
		if err != nil {
			return err
		}
		spec, err := stats.ParseSortSpec(reportFlags.sort, reportFlags.dir)
		if err != nil {
			return err
		}

		if err := store.Load(cmd.Context()); err != nil {
			return err
		}
		records, err := store.Snapshot()
		if err != nil {
			return err
		}

		d := stats.BuildDashboard(records, sel, spec)
		out := cmd.OutOrStdout()
		switch reportFlags.format {
		case "text":
			return visuals.WriteReport(out, d)
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		case "mermaid":
			_, err := fmt.Fprintln(out, visuals.GenerateDashboardCharts(d))
			return err
		default:
			return fmt.Errorf("unknown format %q (expected text, json or mermaid)", reportFlags.format)
		}
	},
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportFlags.facility, "facility", "", "facility to filter on")
	f.StringVar(&reportFlags.category, "category", "", "specialty category to filter on")
	f.StringVar(&reportFlags.specialty, "specialty", "", "specialty to filter on")
	f.StringSliceVar(&reportFlags.weeks, "week", nil, "weeks of the month (All or 1-5, repeatable or comma-separated)")
	f.StringVar(&reportFlags.sort, "sort", "", "specialty sort key (default total)")
	f.StringVar(&reportFlags.dir, "dir", "", "sort direction asc or desc (default desc)")
	f.StringVar(&reportFlags.format, "format", "text", "output format: text, json or mermaid")
	rootCmd.AddCommand(reportCmd)
}
