package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/travver/travver/pkg/remote"
	"github.com/travver/travver/pkg/trip"
)

func mustDate(t *testing.T, s string) trip.Date {
	t.Helper()
	d, err := trip.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func validRequest(t *testing.T) Request {
	t.Helper()
	return Request{
		Destination: "Osaka",
		StartDate:   mustDate(t, "2026-03-01"),
		EndDate:     mustDate(t, "2026-03-02"),
		Travelers:   2,
		Budget:      1000000,
		Styles:      []trip.Style{trip.StyleFood},
	}
}

func generatedTrip(t *testing.T) *trip.Trip {
	t.Helper()
	period := trip.TripPeriod{Start: mustDate(t, "2026-03-01"), End: mustDate(t, "2026-03-02")}
	tr := trip.New("Osaka", period, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	tr.DailyPlans = []trip.DailyPlan{
		{
			Day:   1,
			Date:  mustDate(t, "2026-03-01"),
			Theme: "Arrival",
			Schedules: []trip.Schedule{
				{Order: 1, Time: "10:00", Place: "Dotonbori", Category: trip.CategoryFood, DurationMin: 90},
			},
		},
	}
	return tr
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty destination", func(r *Request) { r.Destination = "" }},
		{"end before start", func(r *Request) { r.EndDate = mustDate(t, "2026-02-01") }},
		{"too long", func(r *Request) { r.EndDate = mustDate(t, "2026-04-15") }},
		{"zero travelers", func(r *Request) { r.Travelers = 0 }},
		{"too many travelers", func(r *Request) { r.Travelers = 51 }},
		{"negative budget", func(r *Request) { r.Budget = -1 }},
		{"too many styles", func(r *Request) {
			r.Styles = []trip.Style{
				trip.StyleFood, trip.StyleSightseeing, trip.StyleRelaxation,
				trip.StyleActivity, trip.StyleShopping, trip.StylePhoto, trip.StyleFood,
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(t)
			tc.mutate(&req)
			if err := req.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
	req := validRequest(t)
	if err := req.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestPlan(t *testing.T) {
	want := generatedTrip(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/plan" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Destination != "Osaka" {
			t.Errorf("destination not forwarded: %q", req.Destination)
		}
		json.NewEncoder(w).Encode(planResponse{Success: true, Trip: want})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.Plan(context.Background(), validRequest(t))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if got.Destination != want.Destination || len(got.DailyPlans) != 1 {
		t.Fatalf("unexpected trip: %+v", got)
	}
}

func TestPlanRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"PLANNING_FAILED"}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	_, err := c.Plan(context.Background(), validRequest(t))
	if err == nil {
		t.Fatalf("expected error")
	}
	if kind, ok := remote.KindOf(err); !ok || kind != remote.KindRejected {
		t.Fatalf("expected rejected, got %v", err)
	}
}

func TestPlanConnectionError(t *testing.T) {
	c := &Client{BaseURL: "http://127.0.0.1:1"}
	_, err := c.Plan(context.Background(), validRequest(t))
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := remote.KindOf(err); !ok {
		t.Fatalf("expected classified error, got %v", err)
	}
}

func TestPlanRejectsInvalidTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bad := generatedTrip(t)
		bad.DailyPlans[0].Schedules[0].Order = 5
		json.NewEncoder(w).Encode(planResponse{Success: true, Trip: bad})
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.Plan(context.Background(), validRequest(t)); err == nil {
		t.Fatalf("expected structural validation failure")
	}
}
