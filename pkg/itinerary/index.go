// Package itinerary flattens a trip's nested daily schedules into one
// stable global ordering so independently rendered views (map markers,
// timeline cards) can refer to the same entry unambiguously.
package itinerary

import (
	"sort"

	"github.com/travver/travver/pkg/trip"
)

// AllDays selects every day when filtering.
const AllDays = 0

// Entry is one schedule in the flattened sequence. GlobalIndex is its
// position in the day-ascending, order-ascending concatenation of all
// daily plans; it is stable for a fixed trip regardless of any filter.
type Entry struct {
	GlobalIndex int
	Day         int
	Schedule    *trip.Schedule
}

// Index is the flat total order over a trip's schedules.
type Index struct {
	entries []Entry
}

// New builds the index: daily plans in ascending day order, schedules in
// ascending visit order within each day.
func New(t *trip.Trip) *Index {
	if t == nil {
		return &Index{}
	}
	plans := make([]trip.DailyPlan, len(t.DailyPlans))
	copy(plans, t.DailyPlans)
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Day < plans[j].Day
	})

	idx := &Index{}
	for pi := range plans {
		schedules := make([]trip.Schedule, len(plans[pi].Schedules))
		copy(schedules, plans[pi].Schedules)
		sort.SliceStable(schedules, func(i, j int) bool {
			return schedules[i].Order < schedules[j].Order
		})
		for si := range schedules {
			idx.entries = append(idx.entries, Entry{
				GlobalIndex: len(idx.entries),
				Day:         plans[pi].Day,
				Schedule:    &schedules[si],
			})
		}
	}
	return idx
}

// Len returns the number of schedules in the index.
func (x *Index) Len() int {
	return len(x.entries)
}

// At returns the entry at a global index.
func (x *Index) At(global int) (Entry, bool) {
	if global < 0 || global >= len(x.entries) {
		return Entry{}, false
	}
	return x.entries[global], true
}

// Flat returns every schedule in global order.
func (x *Index) Flat() []*trip.Schedule {
	flat := make([]*trip.Schedule, len(x.entries))
	for i, e := range x.entries {
		flat[i] = e.Schedule
	}
	return flat
}

// DayView is a day-filtered projection of the index. IndexMap translates
// a local position in Schedules back to the global index, so selections
// made in a filtered view survive in the unfiltered space.
type DayView struct {
	Day       int
	Schedules []*trip.Schedule
	IndexMap  []int
}

// FilterByDay projects the index onto one day. Day AllDays (zero)
// returns the full sequence with an identity index map. Global indices
// never change with the filter; only visibility and local position do.
func (x *Index) FilterByDay(day int) DayView {
	view := DayView{Day: day}
	for _, e := range x.entries {
		if day != AllDays && e.Day != day {
			continue
		}
		view.Schedules = append(view.Schedules, e.Schedule)
		view.IndexMap = append(view.IndexMap, e.GlobalIndex)
	}
	return view
}

// GlobalIndex translates (day, position-within-day) to a global index.
func (x *Index) GlobalIndex(day, posInDay int) (int, bool) {
	seen := 0
	for _, e := range x.entries {
		if e.Day != day {
			continue
		}
		if seen == posInDay {
			return e.GlobalIndex, true
		}
		seen++
	}
	return 0, false
}
