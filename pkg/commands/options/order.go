// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// OrderOptions captures the editable order fields for create and edit.
type OrderOptions struct {
	Description string
	From        string
	To          string
	Quantity    int
	OrderedAt   string
}

// AddOrderArgs wires the order field flags on the provided command.
func AddOrderArgs(cmd *cobra.Command, o *OrderOptions) {
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Describe the order (at most 100 characters).")
	cmd.Flags().StringVar(&o.From, "from", "",
		"Where the order ships from.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Where the order ships to.")
	cmd.Flags().IntVar(&o.Quantity, "quantity", 1,
		"Item count, between 1 and 99.")
}

// AddOrderedAtArg registers the order date flag, used on create only.
func AddOrderedAtArg(cmd *cobra.Command, o *OrderOptions) {
	cmd.Flags().StringVar(&o.OrderedAt, "on", "",
		`Order date, example: --on="2026-09-15".`)
}
