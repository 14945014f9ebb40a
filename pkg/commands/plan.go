package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/travver/travver/pkg/commands/options"
	"github.com/travver/travver/pkg/planner"
	"github.com/travver/travver/pkg/runner/plan"
	"github.com/travver/travver/pkg/store"
	"github.com/travver/travver/pkg/trip"
)

func addPlan(topLevel *cobra.Command) {
	po := &options.PlanOptions{}
	ro := &options.RemoteOptions{}

	cmd := &cobra.Command{
		Use:   "plan [destination]",
		Short: "Generate and save an itinerary for a destination",
		Example: `
travver plan Osaka --start 2026-03-01 --end 2026-03-03
travver plan Jeju --start 2026-05-01 --end 2026-05-05 --style food --style relaxation --budget 2000000
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("destination required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			start, err := trip.ParseDate(po.Start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			end, err := trip.ParseDate(po.End)
			if err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			styles, err := trip.ParseStyles(po.Styles)
			if err != nil {
				return err
			}

			req := planner.Request{
				Destination: strings.Join(args, " "),
				StartDate:   start,
				EndDate:     end,
				Travelers:   po.Travelers,
				Budget:      po.Budget,
				Styles:      styles,
			}
			if po.AccommodationLocation != "" {
				req.AccommodationLocation = &po.AccommodationLocation
			}
			if po.CustomPreference != "" {
				req.CustomPreference = &po.CustomPreference
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := plan.Plan{
				Request:     req,
				Client:      &planner.Client{BaseURL: ro.Server},
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPlanArgs(cmd, po)
	options.AddRemoteArgs(cmd, ro)
	base.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
