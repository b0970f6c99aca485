package main

import (
	"encoding/json"
	"fmt"

	"github.com/jgoulah/freelancestats/internal/render"
	"github.com/jgoulah/freelancestats/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportTop     int
	reportJSON    bool
	reportNoColor bool
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Print the year overview for a bookings spreadsheet",
	Long: `Loads the bookings spreadsheet (.ods, .xlsx or .csv) and prints the freelance year overview.
Use --json to print the computed statistics instead of the dashboard.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportTop, "top", 0, "Number of longest consecutive bookings to list (default from config, then 5)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the statistics as JSON")
	reportCmd.Flags().BoolVar(&reportNoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	res, err := loadBookings(args[0])
	if err != nil {
		return err
	}

	top := reportTop
	if top <= 0 {
		top = cfg.GetTopRuns()
	}

	bundle := report.Compute(res.Bookings, report.Options{
		TopRuns:      top,
		BusinessDays: cfg.GetBusinessDays(),
	})
	logger.Debug("Computed report",
		"runs", len(bundle.Runs),
		"months", len(bundle.Monthly),
		"studios", len(bundle.Studios))

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(bundle); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	}

	opts := render.Options{
		Currency: cfg.GetCurrency(),
		Color:    !reportNoColor && !cfg.Display.NoColor,
	}
	if err := render.Dashboard(out, bundle, opts); err != nil {
		return fmt.Errorf("writing dashboard: %w", err)
	}
	return nil
}
