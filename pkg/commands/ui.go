package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	teaui "tableflip.dev/ordo/pkg/runner/tea"
	"tableflip.dev/ordo/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive order grid",
		Example: `
ordo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			c, err := client.New(cfg)
			if err != nil {
				return err
			}
			cache, err := store.Load(cfg)
			if err != nil {
				// The grid works without a cache; note it and move on.
				fmt.Fprintf(os.Stderr, "warning: snapshot cache unavailable: %v\n", err)
				cache = nil
			}
			return teaui.Run(c, cache)
		},
	}

	topLevel.AddCommand(cmd)
}
