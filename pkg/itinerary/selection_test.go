package itinerary

import "testing"

func TestSelectFromMapTranslatesFilteredIndex(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))

	c.SetDayFilter(2)
	if !c.SelectFromMap(0) {
		t.Fatalf("expected selection to succeed")
	}
	global, ok := c.Selected()
	if !ok || global != 2 {
		t.Fatalf("expected global index 2 (schedule C), got %d ok=%v", global, ok)
	}
	entry, ok := c.SelectedEntry()
	if !ok || entry.Schedule.Place != "C" {
		t.Fatalf("expected C selected, got %+v", entry)
	}
}

func TestBothViewsAgreeOnSelection(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))

	// Timeline selects day 1, second card (B, global 1).
	if !c.SelectFromTimeline(1, 1) {
		t.Fatalf("timeline selection failed")
	}
	fromTimeline, _ := c.Selected()

	// The map, drawing the unfiltered view, resolves the same marker.
	local, visible := c.VisibleLocalIndex()
	if !visible {
		t.Fatalf("expected selection visible in unfiltered view")
	}
	if !c.SelectFromMap(local) {
		t.Fatalf("map selection failed")
	}
	fromMap, _ := c.Selected()

	if fromTimeline != fromMap {
		t.Fatalf("views disagree: timeline %d, map %d", fromTimeline, fromMap)
	}
}

func TestFilterChangeKeepsSelection(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))

	if !c.SelectFromTimeline(1, 0) { // A, global 0
		t.Fatalf("selection failed")
	}

	c.SetDayFilter(2)
	global, ok := c.Selected()
	if !ok || global != 0 {
		t.Fatalf("selection must survive filter change, got %d ok=%v", global, ok)
	}
	if _, visible := c.VisibleLocalIndex(); visible {
		t.Fatalf("selection should be reported as out of view on day 2")
	}

	c.SetDayFilter(AllDays)
	local, visible := c.VisibleLocalIndex()
	if !visible || local != 0 {
		t.Fatalf("expected selection visible again at local 0, got %d %v", local, visible)
	}
}

func TestSelectFromMapRejectsOutOfRange(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))
	c.SetDayFilter(2)
	if c.SelectFromMap(1) {
		t.Fatalf("expected out-of-range local index to be rejected")
	}
	if _, ok := c.Selected(); ok {
		t.Fatalf("failed selection must not set state")
	}
}

func TestClearDropsSelection(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))
	if !c.SelectFromMap(0) {
		t.Fatalf("selection failed")
	}
	c.Clear()
	if _, ok := c.Selected(); ok {
		t.Fatalf("expected no selection after clear")
	}
}

func TestSetIndexDropsStaleSelection(t *testing.T) {
	c := NewController(New(twoDayTrip(t)))
	if !c.SelectFromTimeline(2, 0) { // global 2
		t.Fatalf("selection failed")
	}

	// Refetched trip now has a single schedule; global 2 no longer exists.
	smaller := twoDayTrip(t)
	smaller.DailyPlans = smaller.DailyPlans[1:]
	c.SetIndex(New(smaller))

	if _, ok := c.Selected(); ok {
		t.Fatalf("expected stale selection dropped")
	}
}
