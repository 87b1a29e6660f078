package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/commands/options"
	"tableflip.dev/ordo/pkg/runner/login"
	"tableflip.dev/ordo/pkg/store"
)

func addLogin(topLevel *cobra.Command) {
	lo := &options.LoginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in to the order backend",
		Example: `
ordo login --email=me@example.com --password=secret
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
			s := login.Login{
				Credentials: client.Credentials{
					Email:    lo.Email,
					Password: lo.Password,
				},
				Backend: c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddLoginArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
