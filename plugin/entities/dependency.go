// Package entities contains domain entities for satellite discovery.
package entities

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/reglet-dev/reglet-integrations/plugin/values"
)

// Dependency is a satellite declared by the host manifest.
type Dependency struct {
	// Name is the satellite package name (e.g., "leadconduit-zip").
	Name values.SatelliteName

	// Constraint is the declared version range (e.g., "^1.2.0"). It may be a
	// non-semver specifier such as a git URL.
	Constraint string
}

// NewDependency validates name and builds a Dependency.
func NewDependency(name, constraint string) (Dependency, error) {
	sn, err := values.NewSatelliteName(name)
	if err != nil {
		return Dependency{}, err
	}
	return Dependency{Name: sn, Constraint: constraint}, nil
}

// String renders the dependency as name@constraint.
func (d Dependency) String() string {
	if d.Constraint == "" {
		return d.Name.String()
	}
	return d.Name.String() + "@" + d.Constraint
}

// MatchName reports whether a package name matches the satellite naming pattern.
func MatchName(pattern, name string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("invalid satellite pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return doublestar.Match(pattern, name)
}

// QualifyingDependencies returns the host dependencies whose names match
// pattern, sorted by name. Names that match but are not valid satellite
// names are an error.
func QualifyingDependencies(host *manifest.Manifest, pattern string) ([]Dependency, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid satellite pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	if host == nil {
		return nil, nil
	}

	names := make([]string, 0, len(host.Dependencies))
	for name := range host.Dependencies {
		if ok, _ := doublestar.Match(pattern, name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		dep, err := NewDependency(name, host.Dependencies[name])
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", name, err)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}
