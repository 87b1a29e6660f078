package get

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/order"
	"tableflip.dev/ordo/pkg/printers"
	"tableflip.dev/ordo/pkg/store"
)

type Get struct {
	ShowID bool
	ID     int
	Count  int
	Cached bool

	Backend client.Backend
	Cache   store.Snapshot
}

func (n *Get) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Cached {
		if n.Cache == nil {
			return errors.New("can not get, no cache")
		}
		all := n.Cache.List(ctx)
		pp.TitleWithCount("Orders (cached)", len(all))
		pp.Orders(all...)
		return nil
	}

	if n.Backend == nil {
		return errors.New("can not get, no backend")
	}

	if n.ID > 0 {
		d, err := n.Backend.OrderDetail(ctx, n.ID)
		if err != nil {
			return err
		}
		o := order.FromDetail(n.ID, d)
		pp.Title(o.Name)
		pp.Detail(o)
		return nil
	}

	count := n.Count
	if count <= 0 {
		count = client.DefaultFetchCount
	}
	all, err := n.Backend.FetchOrders(ctx, count)
	if err != nil {
		return err
	}
	if n.Cache != nil {
		if err := n.Cache.Put(all); err != nil {
			// Caching is best effort; the listing still prints.
			fmt.Fprintf(os.Stderr, "warning: could not update snapshot cache: %v\n", err)
		}
	}
	pp.TitleWithCount("Orders", len(all))
	pp.Orders(all...)
	return nil
}
