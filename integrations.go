// Package integrations discovers the satellite packages a host application
// depends on and indexes every integration they expose.
//
// A satellite is a dependency whose name matches a naming pattern
// (leadconduit-* by default). Satellites are resolved first from a Catalog of
// packages linked into the binary, then from a packages directory laid out as
// <dir>/<name>/{package.json|manifest.yaml|manifest.yml} with an optional
// capabilities.yaml describing the capability tree.
//
//	reg, err := integrations.Discover(ctx, integrations.Options{
//		ManifestPath: "package.json",
//		PackagesDir:  "node_modules",
//	})
//	integration, ok := reg.Lookup("leadconduit-zip.inbound.lookup")
package integrations

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/ports"
	"github.com/reglet-dev/reglet-integrations/plugin/repository"
	"github.com/reglet-dev/reglet-integrations/plugin/resolvers"
	"github.com/reglet-dev/reglet-integrations/plugin/services"
	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/reglet-dev/reglet-integrations/validation"
)

// Defaults applied to zero Options fields.
const (
	DefaultManifestPath = "package.json"
	DefaultPackagesDir  = "node_modules"
)

// Options configures discovery.
type Options struct {
	// Catalog holds satellites linked into the binary. Optional.
	Catalog *plugin.Catalog
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// ManifestPath is the host manifest. Defaults to DefaultManifestPath.
	ManifestPath string
	// PackagesDir holds installed satellites. Defaults to DefaultPackagesDir.
	PackagesDir string
	// Pattern selects satellite dependencies. Defaults to plugin.DefaultPattern.
	Pattern string
	// StrictVersions fails discovery when an installed satellite does not
	// satisfy the host's declared range.
	StrictVersions bool
	// SkipValidation disables schema validation of on-disk manifests.
	SkipValidation bool
}

func (o Options) withDefaults() Options {
	if o.ManifestPath == "" {
		o.ManifestPath = DefaultManifestPath
	}
	if o.PackagesDir == "" {
		o.PackagesDir = DefaultPackagesDir
	}
	if o.Pattern == "" {
		o.Pattern = plugin.DefaultPattern
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Catalog == nil {
		o.Catalog = plugin.NewCatalog()
	}
	return o
}

// NewDiscoveryService wires the linked and directory resolvers, version
// checks and logging into a plugin.DiscoveryService.
func NewDiscoveryService(opts Options) (*plugin.DiscoveryService, error) {
	opts = opts.withDefaults()

	var validator validation.ManifestValidator
	if !opts.SkipValidation {
		v, err := validation.NewManifestValidator()
		if err != nil {
			return nil, fmt.Errorf("creating manifest validator: %w", err)
		}
		validator = v
	}

	semver := resolvers.NewSemverResolver()
	chain := services.Chain(
		resolvers.NewLinkedResolver(opts.Catalog),
		resolvers.NewDirectoryResolver(repository.NewFSSatelliteRepository(opts.PackagesDir), validator, opts.Logger),
	)

	return plugin.NewDiscoveryService(chain,
		plugin.WithPattern(opts.Pattern),
		plugin.WithCompatibilityService(services.NewCompatibilityService(semver, opts.StrictVersions)),
		plugin.WithLogger(opts.Logger),
	), nil
}

// Discover reads the host manifest at opts.ManifestPath and builds the
// registry of every integration its satellites expose.
func Discover(ctx context.Context, opts Options) (*registry.Registry, error) {
	opts = opts.withDefaults()

	host, err := manifest.ParseFile(opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("reading host manifest: %w", err)
	}
	return DiscoverFor(ctx, host, opts)
}

// DiscoverFor is like Discover with an already parsed host manifest.
func DiscoverFor(ctx context.Context, host *manifest.Manifest, opts Options) (*registry.Registry, error) {
	svc, err := NewDiscoveryService(opts)
	if err != nil {
		return nil, err
	}
	return svc.Discover(ctx, host)
}

// InstalledSatellite is a satellite available to discovery.
type InstalledSatellite struct {
	Name   string          `json:"name" yaml:"name"`
	Source entities.Source `json:"source" yaml:"source"`
}

// Installed lists the satellites matching opts.Pattern that the catalog and
// the packages directory can supply, whether or not the host depends on them.
// A linked satellite shadows an installed one of the same name, as it does
// during discovery. Linked satellites come first, each group sorted by name.
func Installed(ctx context.Context, opts Options) ([]InstalledSatellite, error) {
	opts = opts.withDefaults()
	if _, err := entities.MatchName(opts.Pattern, ""); err != nil {
		return nil, err
	}

	sources := []struct {
		repo   ports.SatelliteRepository
		source entities.Source
	}{
		{opts.Catalog, entities.SourceLinked},
		{repository.NewFSSatelliteRepository(opts.PackagesDir), entities.SourceDirectory},
	}

	seen := make(map[string]bool)
	out := make([]InstalledSatellite, 0)
	for _, src := range sources {
		names, err := src.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing %s satellites: %w", src.source, err)
		}
		sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })

		for _, name := range names {
			ok, err := entities.MatchName(opts.Pattern, name.String())
			if err != nil {
				return nil, err
			}
			if !ok || seen[name.String()] {
				continue
			}
			seen[name.String()] = true
			out = append(out, InstalledSatellite{Name: name.String(), Source: src.source})
		}
	}
	return out, nil
}
