package trip

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travver/travver/pkg/geo"
)

// Schedule is one place visit within a day. Order is 1-based and
// contiguous within its DailyPlan.
type Schedule struct {
	Order         int          `json:"order"`
	Time          string       `json:"time"`
	Place         string       `json:"place"`
	Category      Category     `json:"category"`
	DurationMin   int          `json:"duration_min"`
	EstimatedCost int          `json:"estimated_cost"`
	Description   string       `json:"description"`
	Location      geo.Location `json:"location"`
	ImageURL      *string      `json:"image_url,omitempty"`
	Rating        *float64     `json:"rating,omitempty"`
	PlaceID       *string      `json:"place_id,omitempty"`
}

// EndTime returns the visit end as "HH:MM", wrapping past midnight.
func (s Schedule) EndTime() (string, error) {
	start, err := time.Parse("15:04", s.Time)
	if err != nil {
		return "", fmt.Errorf("trip: bad time %q: %w", s.Time, err)
	}
	end := start.Add(time.Duration(s.DurationMin) * time.Minute)
	return end.Format("15:04"), nil
}

// Validate checks field ranges and the time format.
func (s Schedule) Validate() error {
	if s.Order < 1 {
		return fmt.Errorf("trip: schedule order %d must be >= 1", s.Order)
	}
	if _, err := time.Parse("15:04", s.Time); err != nil {
		return fmt.Errorf("trip: bad time %q: %w", s.Time, err)
	}
	if s.Place == "" {
		return fmt.Errorf("trip: schedule %d has no place", s.Order)
	}
	if _, err := ParseCategory(string(s.Category)); err != nil {
		return err
	}
	if s.DurationMin < 0 {
		return fmt.Errorf("trip: schedule %d duration %d is negative", s.Order, s.DurationMin)
	}
	if s.EstimatedCost < 0 {
		return fmt.Errorf("trip: schedule %d cost %d is negative", s.Order, s.EstimatedCost)
	}
	if s.Rating != nil && (*s.Rating < 0 || *s.Rating > 5) {
		return fmt.Errorf("trip: schedule %d rating %v out of range", s.Order, *s.Rating)
	}
	return s.Location.Validate()
}

// DailyPlan is one calendar day's worth of schedules.
type DailyPlan struct {
	Day       int        `json:"day"`
	Date      Date       `json:"date"`
	Theme     string     `json:"theme"`
	Schedules []Schedule `json:"schedules"`
}

// TotalCost sums the estimated cost of the day's schedules.
func (p DailyPlan) TotalCost() int {
	total := 0
	for _, s := range p.Schedules {
		total += s.EstimatedCost
	}
	return total
}

// TotalDuration sums the planned minutes of the day's schedules.
func (p DailyPlan) TotalDuration() int {
	total := 0
	for _, s := range p.Schedules {
		total += s.DurationMin
	}
	return total
}

// Validate checks the day number and that schedule orders run 1..N with
// no gaps.
func (p DailyPlan) Validate() error {
	if p.Day < 1 {
		return fmt.Errorf("trip: day %d must be >= 1", p.Day)
	}
	for i, s := range p.Schedules {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.Order != i+1 {
			return fmt.Errorf("trip: day %d schedule order %d at position %d, want %d", p.Day, s.Order, i, i+1)
		}
	}
	return nil
}

// TripPeriod is the inclusive date range of a trip.
type TripPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// Days returns the trip length in days, inclusive of both ends.
func (p TripPeriod) Days() int {
	return p.Start.DaysUntil(p.End) + 1
}

// Validate checks that the period does not end before it starts.
func (p TripPeriod) Validate() error {
	if p.End.Before(p.Start.Time) {
		return fmt.Errorf("trip: period ends %s before it starts %s", p.End, p.Start)
	}
	return nil
}

// Budget is the estimated spend for the whole trip.
type Budget struct {
	Estimated int    `json:"estimated"`
	Currency  string `json:"currency"`
}

// DefaultCurrency is used when no currency is given.
const DefaultCurrency = "KRW"

// Trip is the aggregate root for one planned journey. It exclusively
// owns its DailyPlans.
type Trip struct {
	ID                    string      `json:"id"`
	Destination           string      `json:"destination"`
	Period                TripPeriod  `json:"period"`
	Travelers             int         `json:"travelers"`
	Budget                Budget      `json:"total_budget"`
	Styles                []Style     `json:"styles"`
	CustomPreference      *string     `json:"custom_preference,omitempty"`
	AccommodationLocation *string     `json:"accommodation_location,omitempty"`
	DailyPlans            []DailyPlan `json:"daily_plans"`
	Status                Status      `json:"status"`
	CreatedAt             Timestamp   `json:"created_at"`
	ImageURL              *string     `json:"image_url,omitempty"`
}

// New creates a trip with a fresh id and creation time. Status is derived
// from the period and now.
func New(destination string, period TripPeriod, now time.Time) *Trip {
	return &Trip{
		ID:          uuid.NewString(),
		Destination: destination,
		Period:      period,
		Travelers:   1,
		Budget:      Budget{Currency: DefaultCurrency},
		Status:      DeriveStatus(period, DateOf(now)),
		CreatedAt:   Timestamp{Time: now.UTC().Truncate(time.Second)},
	}
}

// Validate checks the aggregate invariants: a valid period, day values
// 1..N each present at most once, and each plan's date matching
// period.start + (day - 1).
func (t *Trip) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trip: missing id")
	}
	if t.Destination == "" {
		return fmt.Errorf("trip: missing destination")
	}
	if err := t.Period.Validate(); err != nil {
		return err
	}
	if t.Travelers < 1 {
		return fmt.Errorf("trip: travelers %d must be >= 1", t.Travelers)
	}
	if t.Budget.Estimated < 0 {
		return fmt.Errorf("trip: budget %d is negative", t.Budget.Estimated)
	}
	days := t.Period.Days()
	seen := make(map[int]bool, len(t.DailyPlans))
	for _, p := range t.DailyPlans {
		if err := p.Validate(); err != nil {
			return err
		}
		if p.Day > days {
			return fmt.Errorf("trip: day %d outside %d-day period", p.Day, days)
		}
		if seen[p.Day] {
			return fmt.Errorf("trip: day %d appears twice", p.Day)
		}
		seen[p.Day] = true
		want := t.Period.Start.AddDays(p.Day - 1)
		if !p.Date.Equal(want.Time) {
			return fmt.Errorf("trip: day %d dated %s, want %s", p.Day, p.Date, want)
		}
	}
	return nil
}

// TotalCost sums estimated costs across every daily plan.
func (t *Trip) TotalCost() int {
	total := 0
	for _, p := range t.DailyPlans {
		total += p.TotalCost()
	}
	return total
}

// Marshal serialises a trip to its wire form.
func Marshal(t *Trip) ([]byte, error) {
	return json.Marshal(t)
}

// Unmarshal parses and validates a serialized trip. Records failing
// validation are rejected as a whole.
func Unmarshal(data []byte) (*Trip, error) {
	t := &Trip{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("trip: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}
