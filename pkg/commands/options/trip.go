// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TripOptions captures trip selection flags for commands.
type TripOptions struct {
	TripID string
	Day    int
}

// AddDayArgs wires the day filter flag on the provided command.
func AddDayArgs(cmd *cobra.Command, o *TripOptions) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", 0,
		"Show only this day of the itinerary. Zero shows every day.")
}
