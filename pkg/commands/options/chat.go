package options

import (
	"github.com/spf13/cobra"
)

// ChatOptions captures the consultant conversation flags.
type ChatOptions struct {
	TripID string
	Stream bool
}

// AddChatArgs wires the chat flags on the provided command.
func AddChatArgs(cmd *cobra.Command, o *ChatOptions) {
	cmd.Flags().StringVarP(&o.TripID, "trip", "t", "",
		"Attach the conversation to a trip.")
	cmd.Flags().BoolVar(&o.Stream, "stream", false,
		"Print the reply as it streams in.")
}
