package show

import (
	"context"
	"errors"
	"fmt"

	"github.com/travver/travver/pkg/itinerary"
	"github.com/travver/travver/pkg/printers"
	"github.com/travver/travver/pkg/store"
)

type Show struct {
	TripID string
	Day    int // zero shows every day

	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}

	t, err := n.Persistence.GetTrip(ctx, n.TripID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("no trip with id %q", n.TripID)
	}

	idx := itinerary.New(t)
	if n.Day != itinerary.AllDays && n.Day > t.Period.Days() {
		return fmt.Errorf("trip has %d day(s), no day %d", t.Period.Days(), n.Day)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TripHeader(t)
	pp.Itinerary(t, idx.FilterByDay(n.Day))

	return nil
}
