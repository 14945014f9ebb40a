package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/travver/travver/pkg/commands/options"
	"github.com/travver/travver/pkg/runner/trips"
	"github.com/travver/travver/pkg/store"
	"github.com/travver/travver/pkg/trip"
)

func addTrips(topLevel *cobra.Command) {
	so := &options.StatusOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "trips",
		Aliases: []string{"list", "ls"},
		Short:   "List saved trips",
		Example: `
travver trips
travver trips --status upcoming
travver trips --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var status trip.Status
			if so.Status != "" {
				var err error
				status, err = trip.ParseStatus(so.Status)
				if err != nil {
					return err
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := trips.Trips{
				ShowID:      io.ShowID,
				Status:      status,
				Watch:       so.Watch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddStatusArgs(cmd, so)
	options.AddWatchArg(cmd, so)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
