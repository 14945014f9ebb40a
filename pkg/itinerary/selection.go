package itinerary

// Controller is the single source of truth for which schedule is
// highlighted, shared by the map and timeline renderers. Whichever view
// initiates a selection, both views read the same global index back.
//
// Changing the day filter never clears an out-of-view selection; the
// global index is kept and VisibleLocalIndex reports it as hidden.
// Callers that want filter changes to deselect do so explicitly with
// Clear. Single-threaded, synchronous state.
type Controller struct {
	index    *Index
	day      int
	selected int
}

const noSelection = -1

// NewController starts with no selection and no day filter.
func NewController(index *Index) *Controller {
	return &Controller{index: index, day: AllDays, selected: noSelection}
}

// SetIndex swaps the underlying index after a trip refetch. A selection
// that no longer exists is dropped.
func (c *Controller) SetIndex(index *Index) {
	c.index = index
	if c.index == nil || c.selected >= c.index.Len() {
		c.selected = noSelection
	}
}

// SetDayFilter changes which day the filtered views show. The selection
// is intentionally left alone.
func (c *Controller) SetDayFilter(day int) {
	c.day = day
}

// DayFilter returns the active day filter.
func (c *Controller) DayFilter() int {
	return c.day
}

// View returns the day-filtered projection the renderers draw from.
func (c *Controller) View() DayView {
	if c.index == nil {
		return DayView{Day: c.day}
	}
	return c.index.FilterByDay(c.day)
}

// SelectFromMap selects by local marker position within the current day
// filter, translating through the view's index map.
func (c *Controller) SelectFromMap(local int) bool {
	view := c.View()
	if local < 0 || local >= len(view.IndexMap) {
		return false
	}
	c.selected = view.IndexMap[local]
	return true
}

// SelectFromTimeline selects by (day, position-within-day) as the
// timeline cards are addressed.
func (c *Controller) SelectFromTimeline(day, posInDay int) bool {
	if c.index == nil {
		return false
	}
	global, ok := c.index.GlobalIndex(day, posInDay)
	if !ok {
		return false
	}
	c.selected = global
	return true
}

// Selected returns the selected global index, if any.
func (c *Controller) Selected() (int, bool) {
	if c.selected == noSelection {
		return 0, false
	}
	return c.selected, true
}

// SelectedEntry resolves the selection against the index.
func (c *Controller) SelectedEntry() (Entry, bool) {
	if c.selected == noSelection || c.index == nil {
		return Entry{}, false
	}
	return c.index.At(c.selected)
}

// VisibleLocalIndex reports where the selection appears in the current
// filtered view, or false when it is selected but filtered out.
func (c *Controller) VisibleLocalIndex() (int, bool) {
	if c.selected == noSelection {
		return 0, false
	}
	for local, global := range c.View().IndexMap {
		if global == c.selected {
			return local, true
		}
	}
	return 0, false
}

// Clear drops the selection.
func (c *Controller) Clear() {
	c.selected = noSelection
}
