package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/runner/remove"
	"github.com/travver/travver/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove [trip id]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a saved trip",
		Example: `
travver remove 9f2c...
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one trip id required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				TripID:      args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
