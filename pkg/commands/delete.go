package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/runner/del"
	"tableflip.dev/ordo/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	var ids []int

	cmd := &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"del", "rm"},
		Short:   "delete one or more orders",
		Example: `
ordo delete 3
ordo delete 2 4 7
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires at least one order id")
			}
			ids = ids[:0]
			for _, a := range args {
				n, err := strconv.Atoi(strings.TrimSpace(a))
				if err != nil || n < 1 {
					return fmt.Errorf("%q is not a valid order id", a)
				}
				ids = append(ids, n)
			}
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
			s := del.Delete{
				IDs:     ids,
				Backend: c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
