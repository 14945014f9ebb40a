package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/commands/options"
	"github.com/travver/travver/pkg/runner/show"
	"github.com/travver/travver/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	to := &options.TripOptions{}

	cmd := &cobra.Command{
		Use:   "show [trip id]",
		Short: "Show the itinerary of a trip",
		Example: `
travver show 9f2c...
travver show 9f2c... --day 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one trip id required")
			}
			to.TripID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := show.Show{
				TripID:      to.TripID,
				Day:         to.Day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDayArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
