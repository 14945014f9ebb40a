package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "travver",
		Short: base.Wrap80("Plan trips, browse itineraries, and keep decorated travel memories from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPlan(topLevel)
	addTrips(topLevel)
	addShow(topLevel)
	addRemove(topLevel)
	addChat(topLevel)
	addDecorate(topLevel)
	addMemories(topLevel)
	addVersion(topLevel)
}
