package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MaxDescription = 100
	MinQuantity    = 1
	MaxQuantity    = 99
)

// Draft is the editable shape of an order, as submitted to the backend on
// create and update. OrderedAt is only sent on create.
type Draft struct {
	Description string `json:"description"`
	OrderFrom   string `json:"orderFrom"`
	OrderTo     string `json:"orderTo"`
	Quantity    int    `json:"quantity"`
	OrderedAt   string `json:"orderedAt,omitempty"`
}

// FieldErrors collects per-field validation messages so callers can show
// them all at once instead of stopping at the first.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, field := range []string{"description", "orderFrom", "orderTo", "quantity", "orderedAt"} {
		if msg, ok := fe[field]; ok {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the constraints shared by create and update. It must
// pass before any request is issued; an invalid draft never reaches the
// network.
func (d Draft) Validate() error {
	fe := FieldErrors{}
	if len(d.Description) > MaxDescription {
		fe["description"] = fmt.Sprintf("must be at most %d characters", MaxDescription)
	}
	if strings.TrimSpace(d.OrderFrom) == "" {
		fe["orderFrom"] = "is required"
	}
	if strings.TrimSpace(d.OrderTo) == "" {
		fe["orderTo"] = "is required"
	}
	if d.Quantity < MinQuantity || d.Quantity > MaxQuantity {
		fe["quantity"] = fmt.Sprintf("must be between %d and %d", MinQuantity, MaxQuantity)
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// ValidateForEdit additionally requires a description; the edit form does
// not accept clearing it.
func (d Draft) ValidateForEdit() error {
	fe := FieldErrors{}
	if err := d.Validate(); err != nil {
		var existing FieldErrors
		if errors.As(err, &existing) {
			fe = existing
		} else {
			return err
		}
	}
	if strings.TrimSpace(d.Description) == "" {
		fe["description"] = "is required"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

// ValidateForCreate additionally requires an order date no earlier than
// today.
func (d Draft) ValidateForCreate(now time.Time) error {
	fe := FieldErrors{}
	if err := d.Validate(); err != nil {
		var existing FieldErrors
		if errors.As(err, &existing) {
			fe = existing
		} else {
			return err
		}
	}
	if d.OrderedAt == "" {
		fe["orderedAt"] = "is required"
	} else if t, err := time.Parse(layoutISO, d.OrderedAt); err != nil {
		fe["orderedAt"] = "must look like " + layoutISO
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if t.Before(today) {
			fe["orderedAt"] = "must not be before today"
		}
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}
