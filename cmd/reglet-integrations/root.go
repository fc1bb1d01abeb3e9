package main

import (
	"context"
	"io"
	"log/slog"

	integrations "github.com/reglet-dev/reglet-integrations"
	"github.com/reglet-dev/reglet-integrations/prompt"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by subcommands.
type app struct {
	v        *viper.Viper
	cfg      config
	logger   *slog.Logger
	prompter prompt.Prompter
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{v: viper.New(), prompter: prompt.NewTerminalPrompter()})
}

func newRootCmdFor(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reglet-integrations",
		Short: "Discover integrations exposed by satellite packages",
		Long: `reglet-integrations reads a host manifest, finds the satellite packages it
depends on and indexes every integration they expose.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}
	bindFlags(cmd, a.v)

	cmd.AddCommand(
		newListCmd(a),
		newPackagesCmd(a),
		newDescribeCmd(a),
		newSchemaCmd(),
		newPickCmd(a),
		newWatchCmd(a),
	)
	return cmd
}

func (a *app) init(logOut io.Writer) error {
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, logOut)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) discover(ctx context.Context) (*registry.Registry, error) {
	return integrations.Discover(ctx, a.cfg.options(a.logger))
}
