// Package trip defines the itinerary domain model: a Trip owns ordered
// DailyPlans, each of which owns ordered Schedules.
package trip

import (
	"fmt"
	"strings"
)

// Category classifies a scheduled place visit.
type Category string

const (
	CategoryFood          Category = "food"
	CategorySightseeing   Category = "sightseeing"
	CategoryAccommodation Category = "accommodation"
	CategoryActivity      Category = "activity"
	CategoryShopping      Category = "shopping"
	CategoryTransport     Category = "transport"
	CategoryRest          Category = "rest"
	CategoryPhoto         Category = "photo"
)

// AllCategories returns the supported place categories.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategorySightseeing,
		CategoryAccommodation,
		CategoryActivity,
		CategoryShopping,
		CategoryTransport,
		CategoryRest,
		CategoryPhoto,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("trip: unknown category %q", raw)
}

// Style is a non-exclusive travel style tag.
type Style string

const (
	StyleFood        Style = "food"
	StyleSightseeing Style = "sightseeing"
	StyleRelaxation  Style = "relaxation"
	StyleActivity    Style = "activity"
	StyleShopping    Style = "shopping"
	StylePhoto       Style = "photo"
)

// AllStyles returns the supported travel styles.
func AllStyles() []Style {
	return []Style{
		StyleFood,
		StyleSightseeing,
		StyleRelaxation,
		StyleActivity,
		StyleShopping,
		StylePhoto,
	}
}

// ParseStyle converts a string to a Style or returns an error for unknown
// values.
func ParseStyle(raw string) (Style, error) {
	s := Style(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStyles() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("trip: unknown style %q", raw)
}

// ParseStyles converts a list of raw style tags.
func ParseStyles(raw []string) ([]Style, error) {
	styles := make([]Style, 0, len(raw))
	for _, r := range raw {
		s, err := ParseStyle(r)
		if err != nil {
			return nil, err
		}
		styles = append(styles, s)
	}
	return styles, nil
}

// Status is the date-derived lifecycle state of a trip. It is persisted
// for wire compatibility but recomputed on every load; the stored value
// is a cache, never authoritative.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// AllStatuses returns the lifecycle states.
func AllStatuses() []Status {
	return []Status{StatusUpcoming, StatusOngoing, StatusCompleted}
}

// ParseStatus converts a string to a Status or returns an error for
// unknown values.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("trip: unknown status %q", raw)
}
