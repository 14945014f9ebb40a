package options

import (
	"github.com/spf13/cobra"
)

// StatusOptions captures the trip status filter flags.
type StatusOptions struct {
	Status string
	Watch  bool
}

// AddStatusArgs wires status filtering on the provided command.
func AddStatusArgs(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Filter by status. One of 'upcoming', 'ongoing' or 'completed'.")
}

// AddWatchArg registers the watch flag to keep the listing live.
func AddWatchArg(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and reprint when the store changes.")
}
