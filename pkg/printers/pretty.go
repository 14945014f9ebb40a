// Package printers renders trips and itineraries for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/travver/travver/pkg/geo"
	"github.com/travver/travver/pkg/itinerary"
	"github.com/travver/travver/pkg/trip"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Trips renders a summary table, one row per trip.
func (pp *PrettyPrint) Trips(trips ...*trip.Trip) {
	if len(trips) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Destination"), bold.Sprint("Period"), bold.Sprint("Days"), bold.Sprint("Status"), bold.Sprint("Budget"))
	} else {
		tbl.AddRow(bold.Sprint("Destination"), bold.Sprint("Period"), bold.Sprint("Days"), bold.Sprint("Status"), bold.Sprint("Budget"))
	}
	for _, t := range trips {
		period := fmt.Sprintf("%s ~ %s", t.Period.Start, t.Period.End)
		budget := fmt.Sprintf("%d %s", t.Budget.Estimated, t.Budget.Currency)
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Destination, period, t.Period.Days(), statusPaint(t.Status).Sprint(t.Status), budget)
		} else {
			tbl.AddRow(t.Destination, period, t.Period.Days(), statusPaint(t.Status).Sprint(t.Status), budget)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Itinerary renders the schedules of one day view, grouping rows by day
// and showing the walking distance between consecutive stops.
func (pp *PrettyPrint) Itinerary(t *trip.Trip, view itinerary.DayView) {
	if len(view.Schedules) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing scheduled\n\n")
		return
	}

	themes := make(map[int]trip.DailyPlan, len(t.DailyPlans))
	for _, p := range t.DailyPlans {
		themes[p.Day] = p
	}

	idx := itinerary.New(t)
	faint := color.New(color.Faint)

	lastDay := -1
	var prev *trip.Schedule
	tbl := uitable.New()
	tbl.Separator = "  "
	for local, s := range view.Schedules {
		entry, ok := idx.At(view.IndexMap[local])
		if !ok {
			continue
		}
		if entry.Day != lastDay {
			pp.flush(tbl)
			tbl = uitable.New()
			tbl.Separator = "  "
			pp.dayTitle(themes[entry.Day])
			lastDay = entry.Day
			prev = nil
		}

		leg := ""
		if prev != nil && located(prev.Location) && located(s.Location) {
			leg = faint.Sprint(geo.FormatDistance(geo.Distance(prev.Location, s.Location)))
		}
		cost := ""
		if s.EstimatedCost > 0 {
			cost = fmt.Sprintf("%d", s.EstimatedCost)
		}
		tbl.AddRow(
			faint.Sprintf("#%d", view.IndexMap[local]),
			s.Time,
			s.Place,
			faint.Sprint(s.Category),
			fmt.Sprintf("%dm", s.DurationMin),
			cost,
			leg,
		)
		prev = s
	}
	pp.flush(tbl)
	fmt.Println("")
}

// Memories renders the trips eligible for the memories surface with
// their decorated-photo counts.
func (pp *PrettyPrint) Memories(trips []*trip.Trip, counts map[string]int) {
	if len(trips) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no trips yet\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Destination"), bold.Sprint("Period"), bold.Sprint("Status"), bold.Sprint("Photos"))
	} else {
		tbl.AddRow(bold.Sprint("Destination"), bold.Sprint("Period"), bold.Sprint("Status"), bold.Sprint("Photos"))
	}
	for _, t := range trips {
		period := fmt.Sprintf("%s ~ %s", t.Period.Start, t.Period.End)
		if pp.ShowID {
			tbl.AddRow(t.ID, t.Destination, period, statusPaint(t.Status).Sprint(t.Status), counts[t.ID])
		} else {
			tbl.AddRow(t.Destination, period, statusPaint(t.Status).Sprint(t.Status), counts[t.ID])
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) dayTitle(plan trip.DailyPlan) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = t.Printf("Day %d", plan.Day)
	if plan.Theme != "" {
		_, _ = c.Printf(" - %s", plan.Theme)
	}
	if !plan.Date.IsZero() {
		_, _ = c.Printf(" (%s)", plan.Date)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	if len(tbl.Rows) == 0 {
		return
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// located reports whether a coordinate looks set. The null island zero
// value never appears in real itineraries.
func located(l geo.Location) bool {
	return (l.Lat != 0 || l.Lng != 0) && l.Validate() == nil
}

func statusPaint(s trip.Status) *color.Color {
	switch s {
	case trip.StatusOngoing:
		return color.New(color.FgHiGreen)
	case trip.StatusUpcoming:
		return color.New(color.FgHiCyan)
	case trip.StatusCompleted:
		return color.New(color.Faint)
	default:
		return color.New()
	}
}

// TripHeader prints the destination banner above an itinerary.
func (pp *PrettyPrint) TripHeader(t *trip.Trip) {
	b := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	_, _ = b.Println(t.Destination)
	styles := make([]string, 0, len(t.Styles))
	for _, s := range t.Styles {
		styles = append(styles, string(s))
	}
	_, _ = c.Printf("%s ~ %s, %d traveler(s), %s", t.Period.Start, t.Period.End, t.Travelers, statusPaint(t.Status).Sprint(t.Status))
	if len(styles) > 0 {
		_, _ = c.Printf(", %s", strings.Join(styles, "/"))
	}
	fmt.Println("")
	fmt.Println("")
}
