package options

import (
	"os"

	"github.com/spf13/cobra"
)

// RemoteOptions locates the travver service.
type RemoteOptions struct {
	Server string
}

// AddRemoteArgs wires the server flag, defaulting from TRAVVER_SERVER.
func AddRemoteArgs(cmd *cobra.Command, o *RemoteOptions) {
	def := os.Getenv("TRAVVER_SERVER")
	if def == "" {
		def = "https://api.travver.app"
	}
	cmd.Flags().StringVar(&o.Server, "server", def,
		"Base URL of the travver service.")
}
