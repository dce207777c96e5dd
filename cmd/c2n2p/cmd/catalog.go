package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/c2n2p/portal/internal/domain"
	"github.com/spf13/cobra"
)

var catalogSections = []string{"features", "orgs", "dashboards"}

type catalogOutput struct {
	Features      []domain.Feature       `json:"features,omitempty"`
	Organizations []domain.Organization  `json:"orgs,omitempty"`
	Dashboards    []domain.DashboardCard `json:"dashboards,omitempty"`
}

func newCatalogCmd() *cobra.Command {
	var (
		format  string
		section string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the landing page content",
		Long: `Catalog prints the fixed content the landing page renders.

Examples:
  c2n2p catalog                      # all sections as tables
  c2n2p catalog --section orgs       # featured organizations only
  c2n2p catalog --format json        # machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := buildCatalog(section)
			if err != nil {
				return err
			}
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			case "table":
				return writeCatalogTables(cmd.OutOrStdout(), out)
			default:
				return fmt.Errorf("invalid format %q: valid formats are table, json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	cmd.Flags().StringVarP(&section, "section", "s", "", "limit output to one section (features, orgs, dashboards)")
	return cmd
}

func buildCatalog(section string) (catalogOutput, error) {
	var out catalogOutput
	switch section {
	case "":
		out.Features = domain.Features()
		out.Organizations = domain.FeaturedOrganizations()
		out.Dashboards = domain.DashboardCards()
	case "features":
		out.Features = domain.Features()
	case "orgs":
		out.Organizations = domain.FeaturedOrganizations()
	case "dashboards":
		out.Dashboards = domain.DashboardCards()
	default:
		return out, fmt.Errorf("invalid section %q: valid sections are %v", section, catalogSections)
	}
	return out, nil
}

func writeCatalogTables(w io.Writer, out catalogOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(out.Features) > 0 {
		fmt.Fprintln(tw, "FEATURE\tDESCRIPTION")
		for _, f := range out.Features {
			fmt.Fprintf(tw, "%s\t%s\n", f.Title, f.Description)
		}
		fmt.Fprintln(tw)
	}
	if len(out.Organizations) > 0 {
		fmt.Fprintln(tw, "ORGANIZATION\tADDRESS\tREQUIREMENT FOCUS")
		for _, o := range out.Organizations {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Name, o.Address, o.Preferences)
		}
		fmt.Fprintln(tw)
	}
	if len(out.Dashboards) > 0 {
		fmt.Fprintln(tw, "ROLE\tDASHBOARD\tDESCRIPTION")
		for _, d := range out.Dashboards {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Role, d.Href, d.Description)
		}
	}
	return tw.Flush()
}
