package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/commands/options"
	decorateclient "github.com/travver/travver/pkg/decorate"
	"github.com/travver/travver/pkg/runner/decorate"
	"github.com/travver/travver/pkg/store"
)

func addDecorate(topLevel *cobra.Command) {
	do := &options.DecorateOptions{}
	ro := &options.RemoteOptions{}

	cmd := &cobra.Command{
		Use:   "decorate [trip id] [photo path]",
		Short: "Turn a travel photo into a styled memory",
		Example: `
travver decorate 9f2c... ./osaka.jpg
travver decorate 9f2c... ./osaka.jpg --style movie_poster
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("trip id and photo path required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := decorate.Decorate{
				TripID:      args[0],
				Path:        args[1],
				Style:       do.Style,
				Client:      &decorateclient.Client{BaseURL: ro.Server},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDecorateArgs(cmd, do)
	options.AddRemoteArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
