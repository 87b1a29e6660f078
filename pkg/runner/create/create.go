package create

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/order"
)

type Create struct {
	Draft order.Draft

	Backend client.Backend
}

// Do validates the draft and submits it. Validation failures stop the
// flow before any request is issued.
func (n *Create) Do(ctx context.Context) error {
	if err := n.Draft.ValidateForCreate(time.Now()); err != nil {
		return err
	}
	if n.Backend == nil {
		return errors.New("can not create, no backend")
	}
	if err := n.Backend.CreateOrder(ctx, n.Draft); err != nil {
		return err
	}
	fmt.Printf("Created order %s → %s ×%d\n", n.Draft.OrderFrom, n.Draft.OrderTo, n.Draft.Quantity)
	return nil
}
