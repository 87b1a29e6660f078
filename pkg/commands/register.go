package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
	"tableflip.dev/ordo/pkg/commands/options"
	"tableflip.dev/ordo/pkg/runner/register"
	"tableflip.dev/ordo/pkg/store"
)

func addRegister(topLevel *cobra.Command) {
	ro := &options.RegisterOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "create a backend account",
		Example: `
ordo register --email=me@example.com --username=me --password=12345678 \
  --birthdate="2000-04-01" --gender=F --address="Jl. Sudirman 1"
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
			s := register.Register{
				Registration: client.Registration{
					Email:       ro.Email,
					DateOfBirth: ro.DateOfBirth,
					Gender:      ro.Gender,
					Address:     ro.Address,
					Username:    ro.Username,
					Password:    ro.Password,
				},
				Linger:  5 * time.Second,
				Backend: c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRegisterArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
