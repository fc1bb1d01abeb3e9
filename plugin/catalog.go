package plugin

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/ports"
	"github.com/reglet-dev/reglet-integrations/plugin/resolvers"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
)

// Catalog holds satellites compiled into the host binary. It implements
// ports.SatelliteRepository so it can back a resolvers.LinkedResolver.
// Several versions of one satellite may be registered; Find picks the
// highest one that satisfies the dependency's constraint.
type Catalog struct {
	satellites map[string][]*entities.Satellite
	versions   ports.VersionResolver
	mu         sync.RWMutex
}

var _ ports.SatelliteRepository = (*Catalog)(nil)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithVersionResolver sets how Find chooses between registered versions.
func WithVersionResolver(v ports.VersionResolver) CatalogOption {
	return func(c *Catalog) { c.versions = v }
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		satellites: make(map[string][]*entities.Satellite),
		versions:   resolvers.NewSemverResolver(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register links a satellite under its manifest name.
func (c *Catalog) Register(m *manifest.Manifest, tree capability.Node) error {
	if m == nil {
		return fmt.Errorf("registering satellite: manifest is required")
	}
	name, err := values.NewSatelliteName(m.Name)
	if err != nil {
		return fmt.Errorf("registering satellite: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.satellites[name.String()] {
		if existing.Version() == m.Version {
			return fmt.Errorf("satellite %s@%s is already registered", name.String(), m.Version)
		}
	}
	sat := entities.NewSatellite(name, m, tree, entities.SourceLinked)
	c.satellites[name.String()] = append(c.satellites[name.String()], sat)
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// init of linked satellites.
func (c *Catalog) MustRegister(m *manifest.Manifest, tree capability.Node) {
	if err := c.Register(m, tree); err != nil {
		panic(err)
	}
}

// Find returns the linked satellite for dep.
func (c *Catalog) Find(ctx context.Context, dep entities.Dependency) (*entities.Satellite, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	candidates := c.satellites[dep.Name.String()]
	switch len(candidates) {
	case 0:
		return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
	case 1:
		return candidates[0], nil
	}

	available := make([]string, len(candidates))
	for i, sat := range candidates {
		available[i] = sat.Version()
	}
	version, err := c.versions.Resolve(dep.Constraint, available)
	if err != nil {
		return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
	}
	for _, sat := range candidates {
		if sat.Version() == version {
			return sat, nil
		}
	}
	return nil, &entities.SatelliteNotFoundError{Name: dep.Name.String(), Constraint: dep.Constraint}
}

// List returns the names of linked satellites, sorted.
func (c *Catalog) List(ctx context.Context) ([]values.SatelliteName, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.satellites))
	for name := range c.satellites {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]values.SatelliteName, len(names))
	for i, name := range names {
		out[i] = values.MustNewSatelliteName(name)
	}
	return out, nil
}
