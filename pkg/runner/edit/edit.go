package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/order"
)

type Edit struct {
	ID int

	// Overrides for the fetched order; nil means keep the current value.
	Description *string
	From        *string
	To          *string
	Quantity    *int

	Backend client.Backend
}

// Do fetches the order, applies the overrides, validates, and submits the
// update. The grid itself never mutates orders; this is the external edit
// flow it delegates to.
func (n *Edit) Do(ctx context.Context) error {
	if n.Backend == nil {
		return errors.New("can not edit, no backend")
	}
	if n.ID < 1 {
		return errors.New("an order id is required")
	}

	d, err := n.Backend.EditDetail(ctx, n.ID)
	if err != nil {
		return err
	}

	draft := order.Draft{
		Description: d.Description,
		OrderFrom:   d.OrderFrom,
		OrderTo:     d.OrderTo,
		Quantity:    d.Quantity,
	}
	if n.Description != nil {
		draft.Description = *n.Description
	}
	if n.From != nil {
		draft.OrderFrom = *n.From
	}
	if n.To != nil {
		draft.OrderTo = *n.To
	}
	if n.Quantity != nil {
		draft.Quantity = *n.Quantity
	}

	if err := draft.ValidateForEdit(); err != nil {
		return err
	}
	if err := n.Backend.UpdateOrder(ctx, draft); err != nil {
		return err
	}
	fmt.Printf("Updated order %d\n", n.ID)
	return nil
}
