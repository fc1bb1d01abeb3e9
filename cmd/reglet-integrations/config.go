package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	integrations "github.com/reglet-dev/reglet-integrations"
	"github.com/reglet-dev/reglet-integrations/plugin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "reglet-integrations"
	envPrefix  = "REGLET_INTEGRATIONS"
)

// Config keys. Flags use the same names with dashes.
const (
	keyConfig         = "config"
	keyManifest       = "manifest"
	keyPackagesDir    = "packages_dir"
	keyPattern        = "pattern"
	keyStrictVersions = "strict_versions"
	keyLogLevel       = "log_level"
)

type config struct {
	Manifest       string
	PackagesDir    string
	Pattern        string
	LogLevel       string
	StrictVersions bool
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (default ./"+configName+".yaml)")
	flags.String(keyManifest, integrations.DefaultManifestPath, "host manifest declaring satellite dependencies")
	flags.String("packages-dir", integrations.DefaultPackagesDir, "directory holding installed satellites")
	flags.String(keyPattern, plugin.DefaultPattern, "glob selecting satellite dependencies")
	flags.Bool("strict-versions", false, "fail when a satellite is outside its declared version range")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = v.BindPFlag(keyConfig, flags.Lookup(keyConfig))
	_ = v.BindPFlag(keyManifest, flags.Lookup(keyManifest))
	_ = v.BindPFlag(keyPackagesDir, flags.Lookup("packages-dir"))
	_ = v.BindPFlag(keyPattern, flags.Lookup(keyPattern))
	_ = v.BindPFlag(keyStrictVersions, flags.Lookup("strict-versions"))
	_ = v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// loadConfig reads the optional config file and merges it under env vars and flags.
func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString(keyConfig); path != "" {
		if _, err := os.Stat(path); err != nil {
			return config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	return config{
		Manifest:       v.GetString(keyManifest),
		PackagesDir:    v.GetString(keyPackagesDir),
		Pattern:        v.GetString(keyPattern),
		LogLevel:       v.GetString(keyLogLevel),
		StrictVersions: v.GetBool(keyStrictVersions),
	}, nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func (c config) options(logger *slog.Logger) integrations.Options {
	return integrations.Options{
		ManifestPath:   c.Manifest,
		PackagesDir:    c.PackagesDir,
		Pattern:        c.Pattern,
		StrictVersions: c.StrictVersions,
		Logger:         logger,
	}
}
