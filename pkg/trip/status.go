package trip

// DeriveStatus computes the lifecycle state of a period as of today.
// Comparison is date-only; both boundary days count as ongoing. Callers
// supply today so the derivation stays a pure function.
func DeriveStatus(period TripPeriod, today Date) Status {
	switch {
	case period.End.Before(today.Time):
		return StatusCompleted
	case period.Start.After(today.Time):
		return StatusUpcoming
	default:
		return StatusOngoing
	}
}
