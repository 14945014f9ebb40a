package trips

import (
	"context"
	"errors"

	"github.com/travver/travver/pkg/printers"
	"github.com/travver/travver/pkg/store"
	"github.com/travver/travver/pkg/trip"
)

type Trips struct {
	ShowID bool
	Status trip.Status // empty means all
	Watch  bool

	Persistence store.Persistence
}

func (n *Trips) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list trips, no persistence")
	}

	if err := n.print(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for ev := range events {
		if ev.Type == store.EventPhotosChanged {
			continue
		}
		if err := n.print(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (n *Trips) print(ctx context.Context) error {
	all, err := n.Persistence.ListTrips(ctx)
	if err != nil {
		return err
	}
	all = n.filtered(all)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if n.Status != "" {
		pp.Title(string(n.Status) + " trips")
	} else {
		pp.Title("trips")
	}
	pp.Trips(all...)
	return nil
}

func (n *Trips) filtered(all []*trip.Trip) []*trip.Trip {
	if n.Status == "" {
		return all
	}
	c := make([]*trip.Trip, 0, len(all))
	for _, t := range all {
		if t.Status == n.Status {
			c = append(c, t)
		}
	}
	return c
}
