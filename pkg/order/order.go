package order

import (
	"fmt"
	"strconv"
)

// Detail is the wire shape of a single order as the backend returns it.
// The backend does not echo the id back; callers track it by request
// position.
type Detail struct {
	OrderFrom   string `json:"orderFrom"`
	OrderTo     string `json:"orderTo"`
	OrderedAt   string `json:"orderedAt"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description,omitempty"`
}

// Order is an order as held in the grid's in-memory snapshot.
type Order struct {
	ID          int
	Name        string
	From        string
	To          string
	OrderedAt   Timestamp
	Quantity    int
	Description string
}

// FromDetail builds an Order from a backend detail payload. Position is
// the 1-based request position; under the fixed-range fetch it doubles as
// the order id, and the display name is derived from it.
func FromDetail(position int, d Detail) *Order {
	return &Order{
		ID:          position,
		Name:        fmt.Sprintf("Order %d", position),
		From:        d.OrderFrom,
		To:          d.OrderTo,
		OrderedAt:   ParseTimestamp(d.OrderedAt),
		Quantity:    d.Quantity,
		Description: d.Description,
	}
}

// DescriptionOrNA is the detail-popup rendering of the optional description.
func (o *Order) DescriptionOrNA() string {
	if o.Description == "" {
		return "N/A"
	}
	return o.Description
}

// Row returns the table columns for this order.
func (o *Order) Row() (string, string, string, string, string) {
	return o.Name, o.From, o.To, o.OrderedAt.Display(), strconv.Itoa(o.Quantity)
}

func (o *Order) String() string {
	return fmt.Sprintf("%s  %s → %s  ×%d", o.Name, o.From, o.To, o.Quantity)
}
