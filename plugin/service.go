// Package plugin discovers satellite packages declared by a host manifest and
// builds the integration registry from them.
package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/services"
	"github.com/reglet-dev/reglet-integrations/registry"
)

// DefaultPattern is the naming convention that marks a dependency as a satellite.
const DefaultPattern = "leadconduit-*"

// DiscoveryService orchestrates satellite discovery.
// Coordinates domain services and infrastructure adapters.
type DiscoveryService struct {
	resolver      services.SatelliteResolutionStrategy
	compatibility *services.CompatibilityService
	pattern       string
	logger        *slog.Logger
}

// DiscoveryServiceOption configures a DiscoveryService.
type DiscoveryServiceOption func(*DiscoveryService)

// NewDiscoveryService creates a discovery service. The resolver chain is
// required.
func NewDiscoveryService(
	resolver services.SatelliteResolutionStrategy,
	opts ...DiscoveryServiceOption,
) *DiscoveryService {
	s := &DiscoveryService{
		resolver: resolver,
		pattern:  DefaultPattern,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithPattern sets the satellite naming pattern (doublestar syntax).
func WithPattern(pattern string) DiscoveryServiceOption {
	return func(s *DiscoveryService) { s.pattern = pattern }
}

// WithCompatibilityService sets the version compatibility check.
func WithCompatibilityService(cs *services.CompatibilityService) DiscoveryServiceOption {
	return func(s *DiscoveryService) { s.compatibility = cs }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) DiscoveryServiceOption {
	return func(s *DiscoveryService) { s.logger = l }
}

// Resolve returns the satellites the host depends on, sorted by name.
func (s *DiscoveryService) Resolve(ctx context.Context, host *manifest.Manifest) ([]*entities.Satellite, error) {
	if s.resolver == nil {
		return nil, errors.New("discovery: no resolver configured")
	}

	deps, err := entities.QualifyingDependencies(host, s.pattern)
	if err != nil {
		return nil, err
	}

	satellites := make([]*entities.Satellite, 0, len(deps))
	for _, dep := range deps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sat, err := s.resolver.Resolve(ctx, dep)
		if err != nil {
			return nil, fmt.Errorf("resolving satellite %q: %w", dep.Name.String(), err)
		}

		if s.compatibility != nil {
			if err := s.compatibility.Check(sat, dep); err != nil {
				if s.compatibility.IsStrict() {
					return nil, err
				}
				s.logger.Warn("satellite version outside declared range",
					"satellite", dep.Name.String(),
					"version", sat.Version(),
					"constraint", dep.Constraint)
			}
		}

		s.logger.Debug("satellite resolved",
			"satellite", dep.Name.String(),
			"version", sat.Version(),
			"source", string(sat.Source()))
		satellites = append(satellites, sat)
	}

	return satellites, nil
}

// Discover is the main use case: resolve every satellite the host depends on
// and index their integrations.
func (s *DiscoveryService) Discover(ctx context.Context, host *manifest.Manifest) (*registry.Registry, error) {
	satellites, err := s.Resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	input := make([]registry.Satellite, len(satellites))
	for i, sat := range satellites {
		input[i] = sat.ToRegistry()
	}

	reg, err := registry.Build(input)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	s.logger.Info("integrations discovered",
		"satellites", len(satellites),
		"modules", reg.Len())
	return reg, nil
}
