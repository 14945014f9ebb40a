package memory

import "github.com/travver/travver/pkg/trip"

// EligibleTrips returns the trips whose start date is today or earlier.
// Ongoing trips qualify, not only completed ones; the comparison is
// date-only. Pure function of its inputs.
func EligibleTrips(trips []*trip.Trip, today trip.Date) []*trip.Trip {
	eligible := make([]*trip.Trip, 0, len(trips))
	for _, t := range trips {
		if t == nil {
			continue
		}
		if !t.Period.Start.After(today.Time) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}
