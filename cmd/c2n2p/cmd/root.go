package cmd

import (
	"os"
	"time"

	"github.com/c2n2p/portal/internal/backend"
	"github.com/c2n2p/portal/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	backendURL string
	timeout    time.Duration
}

// NewRootCmd builds the c2n2p command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "c2n2p",
		Short: "C2N2P portal tooling",
		Long: `c2n2p talks to the same platform backend as the portal.

Available commands:
  probe      Fetch the backend status message
  seed       Ask the backend to seed the Bengaluru demo data
  catalog    Print the fixed landing page content
  version    Print the tool version

The backend defaults to $BACKEND_URL (or $VITE_BACKEND_URL), then ` + config.DefaultBackendURL + `.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.backendURL, "backend", defaultBackendURL(), "platform backend base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(
		newProbeCmd(opts),
		newSeedCmd(opts),
		newCatalogCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultBackendURL() string {
	for _, key := range []string{"BACKEND_URL", "VITE_BACKEND_URL"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return config.DefaultBackendURL
}

func (o *rootOptions) client() (*backend.Client, error) {
	return backend.NewClient(backend.Config{
		BaseURL: o.backendURL,
		Timeout: o.timeout,
	})
}
