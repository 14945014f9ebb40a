package plan

import (
	"context"
	"errors"

	"github.com/travver/travver/pkg/itinerary"
	"github.com/travver/travver/pkg/planner"
	"github.com/travver/travver/pkg/printers"
	"github.com/travver/travver/pkg/store"
)

type Plan struct {
	Request planner.Request

	Client      *planner.Client
	Persistence store.Persistence
}

func (n *Plan) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not plan, no planner client")
	}
	if n.Persistence == nil {
		return errors.New("can not plan, no persistence")
	}

	t, err := n.Client.Plan(ctx, n.Request)
	if err != nil {
		return err
	}
	if err := n.Persistence.UpsertTrip(t); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TripHeader(t)
	idx := itinerary.New(t)
	pp.Itinerary(t, idx.FilterByDay(itinerary.AllDays))

	return nil
}
