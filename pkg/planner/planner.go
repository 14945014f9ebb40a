// Package planner calls the external itinerary-generation service. The
// service is opaque: it takes a plan request and returns a trip-shaped
// payload that is stored as-is after structural validation.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/travver/travver/pkg/remote"
	"github.com/travver/travver/pkg/trip"
)

const (
	// MaxTripDays caps the period a plan request may cover.
	MaxTripDays = 30
	// MaxStyles caps the number of style tags per request.
	MaxStyles = 6
	// MaxTravelers caps the party size.
	MaxTravelers = 50
)

// Request describes the trip to generate.
type Request struct {
	Destination           string       `json:"destination"`
	StartDate             trip.Date    `json:"start_date"`
	EndDate               trip.Date    `json:"end_date"`
	Travelers             int          `json:"travelers"`
	Budget                int          `json:"budget"`
	Styles                []trip.Style `json:"styles"`
	AccommodationLocation *string      `json:"accommodation_location,omitempty"`
	CustomPreference      *string      `json:"custom_preference,omitempty"`
}

// Validate checks the request bounds before anything leaves the process.
func (r Request) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("planner: destination required")
	}
	if r.EndDate.Before(r.StartDate.Time) {
		return fmt.Errorf("planner: end date %s before start date %s", r.EndDate, r.StartDate)
	}
	days := r.StartDate.DaysUntil(r.EndDate) + 1
	if days > MaxTripDays {
		return fmt.Errorf("planner: %d-day trip exceeds the %d-day maximum", days, MaxTripDays)
	}
	if r.Travelers < 1 || r.Travelers > MaxTravelers {
		return fmt.Errorf("planner: travelers %d out of range 1..%d", r.Travelers, MaxTravelers)
	}
	if r.Budget < 0 {
		return fmt.Errorf("planner: budget %d is negative", r.Budget)
	}
	if len(r.Styles) > MaxStyles {
		return fmt.Errorf("planner: %d styles exceeds the maximum of %d", len(r.Styles), MaxStyles)
	}
	return nil
}

// Client talks to the planning service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 120 * time.Second}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// planResponse is the service's envelope around the generated trip.
type planResponse struct {
	Success bool       `json:"success"`
	Trip    *trip.Trip `json:"trip"`
	Message string     `json:"message"`
}

// Plan requests a generated itinerary. The returned trip is validated
// structurally only; business plausibility is the service's problem.
func (c *Client) Plan(ctx context.Context, req Request) (*trip.Trip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("planner: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/agent/plan", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("planner: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, remote.Classify(err)
	}
	defer resp.Body.Close()
	c.logger().Debug("plan request", "destination", req.Destination, "status", resp.StatusCode, "elapsed", time.Since(start))

	if err := remote.FromResponse(resp); err != nil {
		return nil, err
	}

	var envelope planResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("planner: decode response: %w", err)
	}
	if envelope.Trip == nil {
		return nil, fmt.Errorf("planner: response carried no trip")
	}
	if err := envelope.Trip.Validate(); err != nil {
		return nil, fmt.Errorf("planner: generated trip rejected: %w", err)
	}
	return envelope.Trip, nil
}
