package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		format     string
		moduleType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered integrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.discover(cmd.Context())
			if err != nil {
				return err
			}

			modules, err := filterModules(reg, moduleType)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), format, modules, func(t table.Writer) {
				t.AppendHeader(table.Row{"ID", "NAME", "TYPE", "PACKAGE", "VERSION"})
				for _, m := range modules {
					t.AppendRow(table.Row{m.ID, m.Name, typeLabel(m.Type), m.Package.Name, m.Package.Version})
				}
				t.AppendFooter(table.Row{"", "", "", "TOTAL", len(modules)})
			})
		},
	}

	addOutputFlag(cmd, &format)
	cmd.Flags().StringVarP(&moduleType, "type", "t", "", "only list modules of this type (inbound, outbound, none)")
	return cmd
}

// filterModules returns modules in build order, optionally of one type.
func filterModules(reg *registry.Registry, moduleType string) ([]*registry.ModuleRecord, error) {
	switch moduleType {
	case "":
		modules := make([]*registry.ModuleRecord, 0, reg.Len())
		for _, id := range reg.ModuleIDs() {
			m, _ := reg.Module(id)
			modules = append(modules, m)
		}
		return modules, nil
	case string(registry.TypeInbound), string(registry.TypeOutbound):
		return reg.ModulesOfType(registry.ModuleType(moduleType)), nil
	case "none":
		return reg.ModulesOfType(registry.TypeNone), nil
	default:
		return nil, fmt.Errorf("unknown module type %q", moduleType)
	}
}

func typeLabel(t registry.ModuleType) string {
	if t == registry.TypeNone {
		return "-"
	}
	return string(t)
}
