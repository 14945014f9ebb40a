package options

import (
	"github.com/spf13/cobra"
)

// IDOptions controls identifier visibility in listings.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs registers the id visibility flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show trip ids.")
}
