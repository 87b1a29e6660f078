package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/commands/options"
	"tableflip.dev/ordo/pkg/runner/get"
	"tableflip.dev/ordo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FetchOptions{}

	var id int

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "list orders, or show one order's detail",
		Example: `
ordo get
ordo get 3
ordo get --cached
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return fmt.Errorf("expected at most one order id, got %d arguments", len(args))
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
			cache, _ := store.Load(cfg)
			s := get.Get{
				ShowID:  fo.ShowID,
				ID:      id,
				Count:   fo.Count,
				Cached:  fo.Cached,
				Backend: c,
				Cache:   cache,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFetchArgs(cmd, fo)
	options.AddShowIDArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
