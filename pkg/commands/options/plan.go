package options

import (
	"github.com/spf13/cobra"
)

// PlanOptions captures the inputs of a plan request.
type PlanOptions struct {
	Start                 string
	End                   string
	Travelers             int
	Budget                int
	Styles                []string
	AccommodationLocation string
	CustomPreference      string
}

// AddPlanArgs wires the plan request flags on the provided command.
func AddPlanArgs(cmd *cobra.Command, o *PlanOptions) {
	cmd.Flags().StringVar(&o.Start, "start", "",
		"First day of the trip, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.End, "end", "",
		"Last day of the trip, YYYY-MM-DD.")
	cmd.Flags().IntVar(&o.Travelers, "travelers", 1,
		"Number of travelers.")
	cmd.Flags().IntVar(&o.Budget, "budget", 0,
		"Total budget for the trip.")
	cmd.Flags().StringSliceVar(&o.Styles, "style", nil,
		"Travel style, repeatable. One of 'food', 'sightseeing', 'relaxation', 'activity', 'shopping' or 'photo'.")
	cmd.Flags().StringVar(&o.AccommodationLocation, "near", "",
		"Preferred accommodation area.")
	cmd.Flags().StringVar(&o.CustomPreference, "preference", "",
		"Free-form preference passed to the planner.")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}
