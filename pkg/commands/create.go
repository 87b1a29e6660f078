package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/commands/options"
	"tableflip.dev/ordo/pkg/order"
	"tableflip.dev/ordo/pkg/runner/create"
	"tableflip.dev/ordo/pkg/store"
)

func addCreate(topLevel *cobra.Command) {
	oopts := &options.OrderOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "create a new order",
		Example: `
ordo create --from=Jakarta --to=Bandung --quantity=3 --on="2026-09-15" --description="fragile"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			c, err := client.New(cfg)
			if err != nil {
				return err
			}
			s := create.Create{
				Draft: order.Draft{
					Description: oopts.Description,
					OrderFrom:   oopts.From,
					OrderTo:     oopts.To,
					Quantity:    oopts.Quantity,
					OrderedAt:   oopts.OrderedAt,
				},
				Backend: c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOrderArgs(cmd, oopts)
	options.AddOrderedAtArg(cmd, oopts)

	topLevel.AddCommand(cmd)
}
