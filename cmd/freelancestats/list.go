package main

import (
	"fmt"
	"strings"

	"github.com/jgoulah/freelancestats/internal/render"
	"github.com/jgoulah/freelancestats/pkg/models"
	"github.com/spf13/cobra"
)

var (
	listStudio  string
	listNoColor bool
)

var listCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the cleaned bookings",
	Long:  `Displays the bookings as they are after loading: trimmed, validated and sorted by date.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStudio, "studio", "", "Only show bookings for this studio (case insensitive)")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	res, err := loadBookings(args[0])
	if err != nil {
		return err
	}

	bookings := res.Bookings
	if listStudio != "" {
		bookings = filterStudio(bookings, listStudio)
	}

	if len(bookings) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No bookings found for %s\n", listStudio)
		return nil
	}

	opts := render.Options{
		Currency: cfg.GetCurrency(),
		Color:    !listNoColor && !cfg.Display.NoColor,
	}
	if err := render.Bookings(cmd.OutOrStdout(), bookings, opts); err != nil {
		return fmt.Errorf("writing bookings: %w", err)
	}
	return nil
}

func filterStudio(bookings []models.Booking, studio string) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if strings.EqualFold(b.Studio, strings.TrimSpace(studio)) {
			out = append(out, b)
		}
	}
	return out
}
