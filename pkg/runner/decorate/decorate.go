package decorate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/travver/travver/pkg/decorate"
	"github.com/travver/travver/pkg/memory"
	"github.com/travver/travver/pkg/store"
)

type Decorate struct {
	TripID string
	Path   string
	Style  string

	Client      *decorate.Client
	Persistence store.Persistence
}

func (n *Decorate) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not decorate, no decoration client")
	}
	if n.Persistence == nil {
		return errors.New("can not decorate, no persistence")
	}

	t, err := n.Persistence.GetTrip(ctx, n.TripID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("no trip with id %q", n.TripID)
	}

	image, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}
	filename := filepath.Base(n.Path)

	res, err := n.Client.Decorate(ctx, filename, image, n.Style)
	if err != nil {
		return err
	}

	photo := memory.NewDecoratedPhoto(n.TripID, filename, n.Style, res.Image, res.MimeType, time.Now())
	if err := photo.Validate(); err != nil {
		return err
	}
	if err := n.Persistence.StorePhoto(photo); err != nil {
		return err
	}

	fmt.Printf("decorated %s in %s style, photo %s stored for %s\n", filename, n.Style, photo.ID, t.Destination)
	return nil
}
