package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventTripsChanged indicates the trip collection was written.
	EventTripsChanged EventType = iota

	// EventPhotosChanged indicates the photo collection was written.
	EventPhotosChanged

	// EventStoreInvalidated signals a change the watcher could not
	// classify; callers should refresh everything.
	EventStoreInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should
// drain the returned channel to avoid losing events. The channel is
// closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events when the consumer lags; a subsequent
				// refresh picks up the change anyway.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Event{Type: EventStoreInvalidated})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				switch filepath.Base(evt.Name) {
				case tripsKey:
					send(Event{Type: EventTripsChanged})
				case photosKey:
					send(Event{Type: EventPhotosChanged})
				default:
					send(Event{Type: EventStoreInvalidated})
				}
			}
		}
	}()

	return events, nil
}
