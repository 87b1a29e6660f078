package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "ordo",
		Short: base.Wrap80("Manage orders from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addCreate(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addLogin(topLevel)
	addRegister(topLevel)
	addVersion(topLevel)
}
