package memory

import (
	"testing"
	"time"

	"github.com/travver/travver/pkg/trip"
)

func date(t *testing.T, v string) trip.Date {
	t.Helper()
	d, err := trip.ParseDate(v)
	if err != nil {
		t.Fatalf("parse date %q: %v", v, err)
	}
	return d
}

func tripFor(t *testing.T, id, start, end string) *trip.Trip {
	t.Helper()
	return &trip.Trip{
		ID:          id,
		Destination: "Osaka",
		Period:      trip.TripPeriod{Start: date(t, start), End: date(t, end)},
		Travelers:   1,
	}
}

func TestEligibleTripsBoundary(t *testing.T) {
	today := date(t, "2026-03-02")
	trips := []*trip.Trip{
		tripFor(t, "past", "2026-02-01", "2026-02-05"),
		tripFor(t, "ongoing", "2026-03-01", "2026-03-04"),
		tripFor(t, "starts-today", "2026-03-02", "2026-03-06"),
		tripFor(t, "starts-tomorrow", "2026-03-03", "2026-03-06"),
	}

	got := EligibleTrips(trips, today)
	if len(got) != 3 {
		t.Fatalf("expected 3 eligible trips, got %d", len(got))
	}
	for _, tr := range got {
		if tr.ID == "starts-tomorrow" {
			t.Fatalf("trip starting tomorrow must not be eligible")
		}
	}
}

func TestEligibleTripsEmpty(t *testing.T) {
	if got := EligibleTrips(nil, date(t, "2026-03-02")); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestNewDecoratedPhotoDefaults(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	p := NewDecoratedPhoto("trip_123", "beach.jpg", "watercolor", []byte{0xFF, 0xD8}, "", now)
	if p.ID == "" {
		t.Fatalf("expected an id")
	}
	if p.ResultMimeType != "image/jpeg" {
		t.Fatalf("expected default mime type, got %s", p.ResultMimeType)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
