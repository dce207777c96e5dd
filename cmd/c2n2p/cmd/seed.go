package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the Bengaluru demo data",
		Long: `Seed POSTs to the backend's seeding endpoint and prints its acknowledgement.
Unlike the portal's seed button, errors are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			ack, err := client.Seed(cmd.Context())
			if err != nil {
				return fmt.Errorf("seed %s: %w", client.BaseURL(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(ack))
			return nil
		},
	}
}
