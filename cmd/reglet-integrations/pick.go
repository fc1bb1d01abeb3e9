package main

import (
	"github.com/spf13/cobra"
)

func newPickCmd(a *app) *cobra.Command {
	var (
		format     string
		moduleType string
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose an integration interactively and describe it",
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

			m, err := a.prompter.PickModule(modules)
			if err != nil {
				return err
			}
			return describeModule(cmd.OutOrStdout(), format, m)
		},
	}

	addOutputFlag(cmd, &format)
	cmd.Flags().StringVarP(&moduleType, "type", "t", "", "only offer modules of this type (inbound, outbound, none)")
	return cmd
}
