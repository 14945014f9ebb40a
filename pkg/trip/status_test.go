package trip

import "testing"

func mustDate(t *testing.T, v string) Date {
	t.Helper()
	d, err := ParseDate(v)
	if err != nil {
		t.Fatalf("parse date %q: %v", v, err)
	}
	return d
}

func period(t *testing.T, start, end string) TripPeriod {
	t.Helper()
	return TripPeriod{Start: mustDate(t, start), End: mustDate(t, end)}
}

func TestDeriveStatus(t *testing.T) {
	today := mustDate(t, "2026-03-02")

	cases := []struct {
		name   string
		period TripPeriod
		want   Status
	}{
		{"ongoing", period(t, "2026-03-01", "2026-03-04"), StatusOngoing},
		{"upcoming", period(t, "2026-03-05", "2026-03-06"), StatusUpcoming},
		{"completed", period(t, "2026-02-01", "2026-02-05"), StatusCompleted},
		{"starts today", period(t, "2026-03-02", "2026-03-08"), StatusOngoing},
		{"ends today", period(t, "2026-02-27", "2026-03-02"), StatusOngoing},
		{"single day today", period(t, "2026-03-02", "2026-03-02"), StatusOngoing},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.period, today); got != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	p := period(t, "2026-03-01", "2026-03-04")
	if p.Days() != 4 {
		t.Fatalf("expected 4 days, got %d", p.Days())
	}
	single := period(t, "2026-03-01", "2026-03-01")
	if single.Days() != 1 {
		t.Fatalf("expected 1 day, got %d", single.Days())
	}
}

func TestPeriodValidate(t *testing.T) {
	if err := period(t, "2026-03-04", "2026-03-01").Validate(); err == nil {
		t.Fatalf("expected error for inverted period")
	}
	if err := period(t, "2026-03-01", "2026-03-01").Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
