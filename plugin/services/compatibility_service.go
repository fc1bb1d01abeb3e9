package services

import (
	"github.com/reglet-dev/reglet-integrations/plugin/entities"
	"github.com/reglet-dev/reglet-integrations/plugin/ports"
)

// CompatibilityService checks installed satellites against the version
// ranges the host declares.
type CompatibilityService struct {
	versions ports.VersionResolver
	strict   bool
}

// NewCompatibilityService creates a compatibility service. In strict mode a
// mismatch fails discovery; otherwise callers only report it.
func NewCompatibilityService(versions ports.VersionResolver, strict bool) *CompatibilityService {
	return &CompatibilityService{
		versions: versions,
		strict:   strict,
	}
}

// IsStrict returns true if mismatches must fail discovery.
func (s *CompatibilityService) IsStrict() bool {
	return s.strict
}

// Check returns an *entities.IncompatibleVersionError when the satellite's
// version is outside dep's constraint. Constraints that are not semver ranges
// (git URLs, tags, file paths) cannot be checked and pass.
func (s *CompatibilityService) Check(sat *entities.Satellite, dep entities.Dependency) error {
	if s.versions == nil || dep.Constraint == "" {
		return nil
	}

	ok, err := s.versions.Satisfies(dep.Constraint, sat.Version())
	if err != nil {
		return nil //nolint:nilerr // unparseable constraints are not checked
	}
	if !ok {
		return &entities.IncompatibleVersionError{
			Name:       sat.Name().String(),
			Version:    sat.Version(),
			Constraint: dep.Constraint,
		}
	}
	return nil
}
