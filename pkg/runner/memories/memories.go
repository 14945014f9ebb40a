package memories

import (
	"context"
	"errors"
	"time"

	"github.com/travver/travver/pkg/memory"
	"github.com/travver/travver/pkg/printers"
	"github.com/travver/travver/pkg/store"
	"github.com/travver/travver/pkg/trip"
)

type Memories struct {
	ShowID bool
	Today  trip.Date // zero means the current date

	Persistence store.Persistence
}

func (n *Memories) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list memories, no persistence")
	}

	all, err := n.Persistence.ListTrips(ctx)
	if err != nil {
		return err
	}
	today := n.Today
	if today.IsZero() {
		today = trip.DateOf(time.Now())
	}
	eligible := memory.EligibleTrips(all, today)

	counts, err := n.Persistence.PhotoCountsByTrip(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("memories")
	pp.Memories(eligible, counts)

	return nil
}
