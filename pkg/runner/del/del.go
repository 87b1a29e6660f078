package del

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/ordo/pkg/client"
)

type Delete struct {
	IDs []int

	Backend client.Backend
}

// Do removes the given orders. A single id goes through one DELETE; more
// than one fans out concurrently and succeeds only if every DELETE does.
// Deletes that already landed before a sibling failed are not rolled back.
func (n *Delete) Do(ctx context.Context) error {
	if n.Backend == nil {
		return errors.New("can not delete, no backend")
	}
	if len(n.IDs) == 0 {
		return errors.New("at least one order id is required")
	}

	if len(n.IDs) == 1 {
		if err := n.Backend.DeleteOrder(ctx, n.IDs[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted order %d\n", n.IDs[0])
		return nil
	}

	if err := n.Backend.DeleteOrders(ctx, n.IDs); err != nil {
		return fmt.Errorf("one or more deletes failed, backend state may have diverged: %w", err)
	}
	fmt.Printf("Deleted %d orders\n", len(n.IDs))
	return nil
}
