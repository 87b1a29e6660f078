package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/ordo/pkg/client"
)

// FetchOptions controls how the order listing is sourced.
type FetchOptions struct {
	Count  int
	Cached bool
	ShowID bool
}

func AddFetchArgs(cmd *cobra.Command, o *FetchOptions) {
	cmd.Flags().IntVar(&o.Count, "count", client.DefaultFetchCount,
		"How many order ids to fetch, starting from 1.")
	cmd.Flags().BoolVar(&o.Cached, "cached", false,
		"List from the local snapshot cache without calling the backend.")
}

func AddShowIDArgs(cmd *cobra.Command, o *FetchOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id column.")
}
