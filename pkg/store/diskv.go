// Package store persists trips and decorated photos in a local diskv
// store. Each collection lives as one serialized JSON array under a
// single key; every mutation read-modify-writes that array under a
// process-wide lock.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/travver/travver/pkg/memory"
	"github.com/travver/travver/pkg/trip"
)

const (
	tripsKey  = "trips"
	photosKey = "photos"
)

// Persistence defines the persistence contract for trips and decorated
// photos. Trip lists come back in stored order: upserts of new records
// insert at the front, so the most recent trip is first.
type Persistence interface {
	ListTrips(ctx context.Context) ([]*trip.Trip, error)
	GetTrip(ctx context.Context, id string) (*trip.Trip, error)
	UpsertTrip(t *trip.Trip) error
	DeleteTrip(id string) error

	ListPhotos(ctx context.Context) ([]*memory.DecoratedPhoto, error)
	ListPhotosByTrip(ctx context.Context, tripID string) ([]*memory.DecoratedPhoto, error)
	GetPhoto(ctx context.Context, id string) (*memory.DecoratedPhoto, error)
	StorePhoto(p *memory.DecoratedPhoto) error
	DeletePhoto(id string) error
	PhotoCountsByTrip(ctx context.Context) (map[string]int, error)

	Watch(ctx context.Context) (<-chan Event, error)
}

// Option adjusts a Persistence built by Load.
type Option func(*persistence)

// WithNow overrides the clock used to derive trip status on load.
// Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(p *persistence) {
		p.now = now
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time

	// Serializes the read-modify-write cycle on the collection keys so
	// overlapping calls cannot drop each other's records.
	mu sync.Mutex
}

// readRaw loads the serialized array under key. A missing key is an
// empty collection, not an error.
func (p *persistence) readRaw(key string) ([]json.RawMessage, error) {
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("store: decode %s collection: %w", key, err)
	}
	return raws, nil
}

func (p *persistence) writeRaw(key string, raws []json.RawMessage) error {
	if raws == nil {
		raws = []json.RawMessage{}
	}
	data, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("store: encode %s collection: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// recordID extracts the id of a serialized record without decoding the
// rest of it.
func recordID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

// upsert replaces the record with the same id in place, or inserts the
// new record at the front so recent-trips consumers see it first.
func (p *persistence) upsert(key string, id string, record json.RawMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	raws, err := p.readRaw(key)
	if err != nil {
		return err
	}
	for i, raw := range raws {
		if recordID(raw) == id {
			raws[i] = record
			return p.writeRaw(key, raws)
		}
	}
	raws = append([]json.RawMessage{record}, raws...)
	return p.writeRaw(key, raws)
}

// remove deletes by id. Absent ids are a no-op.
func (p *persistence) remove(key, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	raws, err := p.readRaw(key)
	if err != nil {
		return err
	}
	kept := raws[:0]
	for _, raw := range raws {
		if recordID(raw) != id {
			kept = append(kept, raw)
		}
	}
	if len(kept) == len(raws) {
		return nil
	}
	return p.writeRaw(key, kept)
}

// today returns the current calendar date from the injected clock.
func (p *persistence) today() trip.Date {
	return trip.DateOf(p.now())
}

// ListTrips returns every stored trip in insertion order, with status
// freshly derived from the period and the current date. Records that
// fail to parse are skipped so partial corruption never blocks access
// to the rest of the store.
func (p *persistence) ListTrips(ctx context.Context) ([]*trip.Trip, error) {
	raws, err := p.readRaw(tripsKey)
	if err != nil {
		return nil, err
	}
	today := p.today()
	trips := make([]*trip.Trip, 0, len(raws))
	for _, raw := range raws {
		t, err := trip.Unmarshal(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping trip record: %s\n", err)
			continue
		}
		t.Status = trip.DeriveStatus(t.Period, today)
		trips = append(trips, t)
	}
	return trips, nil
}

// GetTrip returns the trip with the given id, or nil when absent. Status
// is re-derived, same as ListTrips.
func (p *persistence) GetTrip(ctx context.Context, id string) (*trip.Trip, error) {
	raws, err := p.readRaw(tripsKey)
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		if recordID(raw) != id {
			continue
		}
		t, err := trip.Unmarshal(raw)
		if err != nil {
			return nil, err
		}
		t.Status = trip.DeriveStatus(t.Period, p.today())
		return t, nil
	}
	return nil, nil
}

// UpsertTrip stores the full record, replacing any record with the same
// id in place. No merge semantics.
func (p *persistence) UpsertTrip(t *trip.Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	data, err := trip.Marshal(t)
	if err != nil {
		return fmt.Errorf("store: encode trip %s: %w", t.ID, err)
	}
	return p.upsert(tripsKey, t.ID, data)
}

// DeleteTrip removes a trip by id. Decorated photos referencing it are
// kept on purpose.
func (p *persistence) DeleteTrip(id string) error {
	return p.remove(tripsKey, id)
}

func (p *persistence) ListPhotos(ctx context.Context) ([]*memory.DecoratedPhoto, error) {
	raws, err := p.readRaw(photosKey)
	if err != nil {
		return nil, err
	}
	photos := make([]*memory.DecoratedPhoto, 0, len(raws))
	for _, raw := range raws {
		photo := &memory.DecoratedPhoto{}
		if err := json.Unmarshal(raw, photo); err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping photo record: %s\n", err)
			continue
		}
		if err := photo.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping photo record: %s\n", err)
			continue
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

func (p *persistence) ListPhotosByTrip(ctx context.Context, tripID string) ([]*memory.DecoratedPhoto, error) {
	all, err := p.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*memory.DecoratedPhoto, 0, len(all))
	for _, photo := range all {
		if photo.TripID == tripID {
			matched = append(matched, photo)
		}
	}
	return matched, nil
}

func (p *persistence) GetPhoto(ctx context.Context, id string) (*memory.DecoratedPhoto, error) {
	all, err := p.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}
	for _, photo := range all {
		if photo.ID == id {
			return photo, nil
		}
	}
	return nil, nil
}

func (p *persistence) StorePhoto(photo *memory.DecoratedPhoto) error {
	if err := photo.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(photo)
	if err != nil {
		return fmt.Errorf("store: encode photo %s: %w", photo.ID, err)
	}
	return p.upsert(photosKey, photo.ID, data)
}

func (p *persistence) DeletePhoto(id string) error {
	return p.remove(photosKey, id)
}

// PhotoCountsByTrip aggregates photo counts keyed by trip id.
func (p *persistence) PhotoCountsByTrip(ctx context.Context) (map[string]int, error) {
	all, err := p.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(all))
	for _, photo := range all {
		counts[photo.TripID]++
	}
	return counts, nil
}
