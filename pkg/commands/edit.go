package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/commands/options"
	"tableflip.dev/ordo/pkg/runner/edit"
	"tableflip.dev/ordo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	oopts := &options.OrderOptions{}

	var id int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "update an existing order",
		Example: `
ordo edit 3 --quantity=5
ordo edit 3 --from=Surabaya --description="updated"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an order id")
			}
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || n < 1 {
				return fmt.Errorf("%q is not a valid order id", args[0])
			}
			id = n
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			c, err := client.New(cfg)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:      id,
				Backend: c,
			}
			// Only fields the user actually set override the fetched order.
			if cmd.Flags().Changed("description") {
				s.Description = &oopts.Description
			}
			if cmd.Flags().Changed("from") {
				s.From = &oopts.From
			}
			if cmd.Flags().Changed("to") {
				s.To = &oopts.To
			}
			if cmd.Flags().Changed("quantity") {
				s.Quantity = &oopts.Quantity
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOrderArgs(cmd, oopts)

	topLevel.AddCommand(cmd)
}
