// Package memory holds the post-visit media records and the query that
// decides which trips qualify for them.
package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/travver/travver/pkg/trip"
)

// DecoratedPhoto is a styled rendition of a travel photo. TripID points
// at the trip it was taken on; the reference is intentionally loose and
// survives trip deletion so memories outlive their trip.
type DecoratedPhoto struct {
	ID               string         `json:"id"`
	TripID           string         `json:"trip_id"`
	OriginalFilename string         `json:"original_filename"`
	Style            string         `json:"style"`
	ResultImage      []byte         `json:"result_image_base64"`
	ResultMimeType   string         `json:"result_mime_type"`
	CreatedAt        trip.Timestamp `json:"created_at"`
}

// NewDecoratedPhoto wraps transformed media bytes into a record with a
// fresh id and creation time.
func NewDecoratedPhoto(tripID, filename, style string, image []byte, mimeType string, now time.Time) *DecoratedPhoto {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &DecoratedPhoto{
		ID:               uuid.NewString(),
		TripID:           tripID,
		OriginalFilename: filename,
		Style:            style,
		ResultImage:      image,
		ResultMimeType:   mimeType,
		CreatedAt:        trip.Timestamp{Time: now.UTC().Truncate(time.Second)},
	}
}

// Validate checks the record's required fields.
func (p *DecoratedPhoto) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("memory: missing photo id")
	}
	if p.TripID == "" {
		return fmt.Errorf("memory: photo %s has no trip id", p.ID)
	}
	if len(p.ResultImage) == 0 {
		return fmt.Errorf("memory: photo %s has no image payload", p.ID)
	}
	return nil
}
