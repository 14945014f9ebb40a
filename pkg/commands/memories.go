package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/travver/travver/pkg/commands/options"
	"github.com/travver/travver/pkg/runner/memories"
	"github.com/travver/travver/pkg/store"
	"github.com/travver/travver/pkg/trip"
)

func addMemories(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	today := ""

	cmd := &cobra.Command{
		Use:   "memories",
		Short: "List trips that already have memories to decorate",
		Example: `
travver memories
travver memories --today 2026-03-15
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var day trip.Date
			if today != "" {
				var err error
				day, err = trip.ParseDate(today)
				if err != nil {
					return err
				}
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := memories.Memories{
				ShowID:      io.ShowID,
				Today:       day,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&today, "today", "",
		"Evaluate eligibility as of this date, YYYY-MM-DD.")

	topLevel.AddCommand(cmd)
}
