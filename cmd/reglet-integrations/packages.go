package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	integrations "github.com/reglet-dev/reglet-integrations"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/spf13/cobra"
)

func newPackagesCmd(a *app) *cobra.Command {
	var (
		format    string
		installed bool
	)

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List discovered satellite packages",
		Long: `List the satellite packages the host depends on. With --installed, list every
satellite the catalog and packages directory can supply instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if installed {
				return a.renderInstalled(cmd, format)
			}

			reg, err := a.discover(cmd.Context())
			if err != nil {
				return err
			}

			packages := make([]*registry.PackageRecord, 0, len(reg.PackageNames()))
			for _, name := range reg.PackageNames() {
				p, _ := reg.Package(name)
				packages = append(packages, p)
			}

			return render(cmd.OutOrStdout(), format, packages, func(t table.Writer) {
				t.AppendHeader(table.Row{"NAME", "VERSION", "MODULES", "REPOSITORY"})
				for _, p := range packages {
					t.AppendRow(table.Row{p.Name, p.Version, len(p.Paths), manifest.StripCredentials(p.RepositoryURL)})
				}
			})
		},
	}

	addOutputFlag(cmd, &format)
	cmd.Flags().BoolVar(&installed, "installed", false, "list available satellites, not only the host's dependencies")
	return cmd
}

func (a *app) renderInstalled(cmd *cobra.Command, format string) error {
	sats, err := integrations.Installed(cmd.Context(), a.cfg.options(a.logger))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, sats, func(t table.Writer) {
		t.AppendHeader(table.Row{"NAME", "SOURCE"})
		for _, s := range sats {
			t.AppendRow(table.Row{s.Name, s.Source})
		}
		t.AppendFooter(table.Row{"TOTAL", len(sats)})
	})
}
