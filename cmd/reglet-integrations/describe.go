package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/spf13/cobra"
)

func newDescribeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe <module-id>",
		Short: "Show one integration and its variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.discover(cmd.Context())
			if err != nil {
				return err
			}

			id, err := registry.ParseModuleID(args[0])
			if err != nil {
				return err
			}
			if _, ok := reg.Package(id.Package()); !ok {
				return fmt.Errorf("module %q not found: no package %q", args[0], id.Package())
			}
			m, ok := reg.Module(id.String())
			if !ok {
				return fmt.Errorf("module %q not found", args[0])
			}
			return describeModule(cmd.OutOrStdout(), format, m)
		},
	}

	addOutputFlag(cmd, &format)
	return cmd
}

func describeModule(w io.Writer, format string, m *registry.ModuleRecord) error {
	if format != formatTable {
		return render(w, format, m, nil)
	}

	if err := render(w, format, m, func(t table.Writer) {
		t.SetTitle(m.ID)
		t.AppendRows([]table.Row{
			{"Name", m.Name},
			{"Type", typeLabel(m.Type)},
			{"Path", m.Path},
			{"Package", m.Package.Name + "@" + m.Package.Version},
			{"Repository", manifest.StripCredentials(m.Package.RepositoryURL)},
		})
	}); err != nil {
		return err
	}

	for _, side := range []struct {
		title string
		vars  []capability.Variable
	}{
		{"Request variables", m.RequestVariables},
		{"Response variables", m.ResponseVariables},
	} {
		if len(side.vars) == 0 {
			continue
		}
		if err := render(w, format, nil, func(t table.Writer) {
			t.SetTitle(side.title)
			t.AppendHeader(table.Row{"NAME", "TYPE", "REQUIRED", "DESCRIPTION"})
			for _, v := range side.vars {
				t.AppendRow(table.Row{v.Name, v.Type, v.Required, v.Description})
			}
		}); err != nil {
			return err
		}
	}
	return nil
}
