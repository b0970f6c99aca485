package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check that a spreadsheet can be loaded",
	Long:  `Loads the spreadsheet and reports how many rows were kept or dropped, without computing the overview.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	res, err := loadBookings(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	first, last := res.Bookings[0].Date, res.Bookings[len(res.Bookings)-1].Date

	fmt.Fprintf(out, "✓ %s is valid\n", args[0])
	fmt.Fprintf(out, "  - Rows: %d\n", res.Stats.Rows)
	fmt.Fprintf(out, "  - Bookings: %d (%s to %s)\n", res.Stats.Kept(), first.Format("2006-01-02"), last.Format("2006-01-02"))
	if res.Stats.Incomplete > 0 {
		fmt.Fprintf(out, "  - Dropped incomplete rows: %d\n", res.Stats.Incomplete)
	}
	if res.Stats.Invalid > 0 {
		fmt.Fprintf(out, "  - Dropped unreadable rows: %d\n", res.Stats.Invalid)
	}
	return nil
}
