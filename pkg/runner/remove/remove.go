package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/travver/travver/pkg/store"
)

type Remove struct {
	TripID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	t, err := n.Persistence.GetTrip(ctx, n.TripID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("no trip with id %q", n.TripID)
	}

	if err := n.Persistence.DeleteTrip(n.TripID); err != nil {
		return err
	}

	fmt.Printf("removed %s (%s)\n", t.Destination, t.ID)
	return nil
}
