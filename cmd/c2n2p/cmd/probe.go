package cmd

import (
	"fmt"

	"github.com/c2n2p/portal/internal/modules/status"
	"github.com/spf13/cobra"
)

func newProbeCmd(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Fetch the backend status message",
		Long: `Probe issues one GET to the backend root and prints the header line the
portal would show. Failures print the placeholder; pass --strict to exit
non-zero instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			msg, err := client.Status(cmd.Context())
			if err != nil {
				if strict {
					return fmt.Errorf("probe %s: %w", client.BaseURL(), err)
				}
				msg = status.Placeholder
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backend: %s\n", msg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the backend cannot be read")
	return cmd
}
